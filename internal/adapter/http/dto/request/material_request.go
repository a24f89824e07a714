package request

import "crewlo/internal/domain/entities"

type MaterialRequest struct {
	Name        *string  `json:"name" binding:"required" example:"Oak Flooring"`
	Category    *string  `json:"category" binding:"required" example:"flooring"`
	Unit        *string  `json:"unit" binding:"required" example:"sq ft"`
	CostPerUnit *float64 `json:"cost_per_unit" binding:"required" example:"8.5"`
	Supplier    *string  `json:"supplier"`
	Description *string  `json:"description"`
}

func (r MaterialRequest) ToFields() entities.MaterialFields {
	return entities.MaterialFields{
		Name:        deref(r.Name),
		Category:    deref(r.Category),
		Unit:        deref(r.Unit),
		CostPerUnit: deref(r.CostPerUnit),
		Supplier:    r.Supplier,
		Description: r.Description,
	}
}
