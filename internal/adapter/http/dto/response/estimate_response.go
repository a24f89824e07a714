package response

import (
	"time"

	"crewlo/internal/domain/entities"
)

type EstimateResponse struct {
	ID            string              `json:"id"`
	ProjectID     string              `json:"project_id"`
	LeadID        *string             `json:"lead_id"`
	Description   string              `json:"description"`
	MaterialsCost float64             `json:"materials_cost"`
	LaborCost     float64             `json:"labor_cost"`
	OverheadCost  float64             `json:"overhead_cost"`
	ProfitMargin  float64             `json:"profit_margin"`
	TotalCost     float64             `json:"total_cost" example:"28000"`
	Status        string              `json:"status" example:"draft"`
	LineItems     []entities.LineItem `json:"line_items" swaggertype:"array,object"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	items := e.LineItems
	if items == nil {
		items = []entities.LineItem{}
	}
	return EstimateResponse{
		ID:            e.ID,
		ProjectID:     e.ProjectID,
		LeadID:        e.LeadID,
		Description:   e.Description,
		MaterialsCost: e.MaterialsCost,
		LaborCost:     e.LaborCost,
		OverheadCost:  e.OverheadCost,
		ProfitMargin:  e.ProfitMargin,
		TotalCost:     e.TotalCost,
		Status:        string(e.Status),
		LineItems:     items,
		CreatedAt:     utc(e.CreatedAt),
		UpdatedAt:     utc(e.UpdatedAt),
	}
}

func FromEstimates(es []entities.Estimate) []EstimateResponse {
	return mapSlice(es, FromEstimate)
}
