package entities

import "time"

type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "draft"
	ProposalStatusSent     ProposalStatus = "sent"
	ProposalStatusViewed   ProposalStatus = "viewed"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"
)

type ProposalFields struct {
	EstimateID string     `json:"estimate_id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Terms      string     `json:"terms"`
	ValidUntil *time.Time `json:"valid_until"`
}

// Proposal is the client facing document built from an estimate.
type Proposal struct {
	ID string `json:"id"`
	ProposalFields
	Status    ProposalStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
