package request

import "crewlo/internal/domain/entities"

// EstimateRequest is the body of POST /api/estimates and PUT /api/estimates/{id}.
//
// The four cost components are required (zero is accepted); total_cost is
// never read from the client.
type EstimateRequest struct {
	ProjectID     *string             `json:"project_id" binding:"required" example:"p1"`
	LeadID        *string             `json:"lead_id"`
	Description   *string             `json:"description" binding:"required" example:"Kitchen remodel"`
	MaterialsCost *float64            `json:"materials_cost" binding:"required" example:"10000"`
	LaborCost     *float64            `json:"labor_cost" binding:"required" example:"12000"`
	OverheadCost  *float64            `json:"overhead_cost" binding:"required" example:"2000"`
	ProfitMargin  *float64            `json:"profit_margin" binding:"required" example:"4000"`
	LineItems     []entities.LineItem `json:"line_items" swaggertype:"array,object"`
}

func (r EstimateRequest) ToFields() entities.EstimateFields {
	items := r.LineItems
	if items == nil {
		items = []entities.LineItem{}
	}
	return entities.EstimateFields{
		ProjectID:     deref(r.ProjectID),
		LeadID:        r.LeadID,
		Description:   deref(r.Description),
		MaterialsCost: deref(r.MaterialsCost),
		LaborCost:     deref(r.LaborCost),
		OverheadCost:  deref(r.OverheadCost),
		ProfitMargin:  deref(r.ProfitMargin),
		LineItems:     items,
	}
}
