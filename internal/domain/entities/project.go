package entities

import "time"

// ProjectStatus is free-form; the constants below are the values the UI knows about.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// ProjectFields is the client supplied part of a project. It is used both to
// create a project and to fully replace an existing one.
type ProjectFields struct {
	Name          string     `json:"name"`
	Description   *string    `json:"description"`
	Address       string     `json:"address"`
	ClientID      string     `json:"client_id"`
	ProjectType   string     `json:"project_type"` // residential, commercial, renovation
	EstimatedCost float64    `json:"estimated_cost"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
}

// Project is a construction job tracked by the business.
//
// Storage model (DynamoDB):
//   - PK: id
type Project struct {
	ID string `json:"id"`
	ProjectFields
	Status     ProjectStatus `json:"status"`
	ActualCost float64       `json:"actual_cost"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
