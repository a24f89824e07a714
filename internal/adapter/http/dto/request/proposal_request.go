package request

import "crewlo/internal/domain/entities"

type ProposalRequest struct {
	EstimateID *string `json:"estimate_id" binding:"required"`
	Title      *string `json:"title" binding:"required" example:"Kitchen remodel proposal"`
	Content    *string `json:"content" binding:"required"`
	Terms      *string `json:"terms" binding:"required" example:"50% deposit"`
	ValidUntil *string `json:"valid_until" binding:"omitempty,flexdate" example:"2024-12-31T00:00:00Z"`
}

func (r ProposalRequest) ToFields() entities.ProposalFields {
	return entities.ProposalFields{
		EstimateID: deref(r.EstimateID),
		Title:      deref(r.Title),
		Content:    deref(r.Content),
		Terms:      deref(r.Terms),
		ValidUntil: parseDatePtr(r.ValidUntil),
	}
}
