package entities

import "time"

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

// DefaultLeadSource is applied when a lead payload omits its source.
const DefaultLeadSource = "website"

type LeadFields struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Address         string  `json:"address"`
	ProjectType     string  `json:"project_type"`
	Description     *string `json:"description"`
	Source          string  `json:"source"` // website, referral, social, phone
	EstimatedBudget float64 `json:"estimated_budget"`
	Notes           *string `json:"notes"`
}

// Lead is a prospective client.
type Lead struct {
	ID string `json:"id"`
	LeadFields
	Status    LeadStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
