package response

import (
	"time"

	"crewlo/internal/domain/entities"
)

type MaterialResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Unit        string    `json:"unit"`
	CostPerUnit float64   `json:"cost_per_unit"`
	Supplier    *string   `json:"supplier"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromMaterial(m entities.Material) MaterialResponse {
	return MaterialResponse{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Unit:        m.Unit,
		CostPerUnit: m.CostPerUnit,
		Supplier:    m.Supplier,
		Description: m.Description,
		CreatedAt:   utc(m.CreatedAt),
		UpdatedAt:   utc(m.UpdatedAt),
	}
}

func FromMaterials(ms []entities.Material) []MaterialResponse {
	return mapSlice(ms, FromMaterial)
}
