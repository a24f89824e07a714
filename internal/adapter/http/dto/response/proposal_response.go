package response

import (
	"time"

	"crewlo/internal/domain/entities"
)

type ProposalResponse struct {
	ID         string     `json:"id"`
	EstimateID string     `json:"estimate_id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Terms      string     `json:"terms"`
	ValidUntil *time.Time `json:"valid_until"`
	Status     string     `json:"status" example:"draft"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:         p.ID,
		EstimateID: p.EstimateID,
		Title:      p.Title,
		Content:    p.Content,
		Terms:      p.Terms,
		ValidUntil: utcPtr(p.ValidUntil),
		Status:     string(p.Status),
		CreatedAt:  utc(p.CreatedAt),
		UpdatedAt:  utc(p.UpdatedAt),
	}
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	return mapSlice(ps, FromProposal)
}
