package request

import "crewlo/internal/domain/entities"

// ProjectRequest is the body of POST /api/projects and PUT /api/projects/{id}.
//
// Required strings are pointers so that presence is checked, not content:
// an explicit "" is accepted.
type ProjectRequest struct {
	Name          *string  `json:"name" binding:"required" example:"Kitchen remodel"`
	Description   *string  `json:"description"`
	Address       *string  `json:"address" binding:"required" example:"12 Elm St"`
	ClientID      *string  `json:"client_id" binding:"required"`
	ProjectType   *string  `json:"project_type" binding:"required" example:"renovation"`
	EstimatedCost *float64 `json:"estimated_cost"`
	StartDate     *string  `json:"start_date" binding:"omitempty,flexdate" example:"2024-06-01"`
	EndDate       *string  `json:"end_date" binding:"omitempty,flexdate"`
}

func (r ProjectRequest) ToFields() entities.ProjectFields {
	return entities.ProjectFields{
		Name:          deref(r.Name),
		Description:   r.Description,
		Address:       deref(r.Address),
		ClientID:      deref(r.ClientID),
		ProjectType:   deref(r.ProjectType),
		EstimatedCost: deref(r.EstimatedCost),
		StartDate:     parseDatePtr(r.StartDate),
		EndDate:       parseDatePtr(r.EndDate),
	}
}

// deref returns the zero value for an absent optional field.
func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
