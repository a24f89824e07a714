package entities

import "time"

// EstimateStatus represents the lifecycle of an estimate.
//
// Transitions are not enforced; any value sent by a client is kept as-is.
type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusRejected EstimateStatus = "rejected"
)

// LineItem is an open-ended cost line (label, quantity, unit_cost, ... or
// anything else the client wants to keep). Order is preserved.
type LineItem map[string]any

type EstimateFields struct {
	ProjectID     string     `json:"project_id"`
	LeadID        *string    `json:"lead_id"`
	Description   string     `json:"description"`
	MaterialsCost float64    `json:"materials_cost"`
	LaborCost     float64    `json:"labor_cost"`
	OverheadCost  float64    `json:"overhead_cost"`
	ProfitMargin  float64    `json:"profit_margin"`
	LineItems     []LineItem `json:"line_items"`
}

// ComputeTotal sums the four cost components.
func (f EstimateFields) ComputeTotal() float64 {
	return f.MaterialsCost + f.LaborCost + f.OverheadCost + f.ProfitMargin
}

// Estimate is a priced breakdown for a project.
//
// Storage model (DynamoDB):
//   - PK: id
//
// project_id and lead_id are soft references; they are never checked.
//
// Monetary representation:
//   - TotalCost is derived from the cost components on every write.
type Estimate struct {
	ID string `json:"id"`
	EstimateFields
	TotalCost float64        `json:"total_cost"`
	Status    EstimateStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
