package entities

import "time"

type MaterialFields struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Unit        string  `json:"unit"` // sq ft, linear ft, each, ...
	CostPerUnit float64 `json:"cost_per_unit"`
	Supplier    *string `json:"supplier"`
	Description *string `json:"description"`
}

// Material is a catalog entry priced per unit. It has no lifecycle status.
type Material struct {
	ID string `json:"id"`
	MaterialFields
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
