package request

import "crewlo/internal/domain/entities"

// LeadRequest is the body of POST /api/leads and PUT /api/leads/{id}.
// An omitted source is stored as "website"; an explicit value, even "", is kept.
type LeadRequest struct {
	Name            *string  `json:"name" binding:"required" example:"Jane Doe"`
	Email           *string  `json:"email" binding:"required" example:"jane@example.com"`
	Phone           *string  `json:"phone" binding:"required" example:"555-0100"`
	Address         *string  `json:"address" binding:"required"`
	ProjectType     *string  `json:"project_type" binding:"required" example:"residential"`
	Description     *string  `json:"description"`
	Source          *string  `json:"source" example:"website"`
	EstimatedBudget *float64 `json:"estimated_budget"`
	Notes           *string  `json:"notes"`
}

func (r LeadRequest) ToFields() entities.LeadFields {
	source := entities.DefaultLeadSource
	if r.Source != nil {
		source = *r.Source
	}
	return entities.LeadFields{
		Name:            deref(r.Name),
		Email:           deref(r.Email),
		Phone:           deref(r.Phone),
		Address:         deref(r.Address),
		ProjectType:     deref(r.ProjectType),
		Description:     r.Description,
		Source:          source,
		EstimatedBudget: deref(r.EstimatedBudget),
		Notes:           r.Notes,
	}
}
