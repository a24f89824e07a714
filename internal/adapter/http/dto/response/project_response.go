package response

import (
	"time"

	"crewlo/internal/domain/entities"
)

type ProjectResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   *string    `json:"description"`
	Address       string     `json:"address"`
	ClientID      string     `json:"client_id"`
	ProjectType   string     `json:"project_type"`
	Status        string     `json:"status" example:"active"`
	EstimatedCost float64    `json:"estimated_cost"`
	ActualCost    float64    `json:"actual_cost"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Address:       p.Address,
		ClientID:      p.ClientID,
		ProjectType:   p.ProjectType,
		Status:        string(p.Status),
		EstimatedCost: p.EstimatedCost,
		ActualCost:    p.ActualCost,
		StartDate:     utcPtr(p.StartDate),
		EndDate:       utcPtr(p.EndDate),
		CreatedAt:     utc(p.CreatedAt),
		UpdatedAt:     utc(p.UpdatedAt),
	}
}

func FromProjects(ps []entities.Project) []ProjectResponse {
	return mapSlice(ps, FromProject)
}
