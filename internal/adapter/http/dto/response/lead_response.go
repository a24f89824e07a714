package response

import (
	"time"

	"crewlo/internal/domain/entities"
)

type LeadResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	ProjectType     string    `json:"project_type"`
	Description     *string   `json:"description"`
	Source          string    `json:"source" example:"website"`
	Status          string    `json:"status" example:"new"`
	EstimatedBudget float64   `json:"estimated_budget"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:              l.ID,
		Name:            l.Name,
		Email:           l.Email,
		Phone:           l.Phone,
		Address:         l.Address,
		ProjectType:     l.ProjectType,
		Description:     l.Description,
		Source:          l.Source,
		Status:          string(l.Status),
		EstimatedBudget: l.EstimatedBudget,
		Notes:           l.Notes,
		CreatedAt:       utc(l.CreatedAt),
		UpdatedAt:       utc(l.UpdatedAt),
	}
}

func FromLeads(ls []entities.Lead) []LeadResponse {
	return mapSlice(ls, FromLead)
}
