package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"crewlo/internal/domain/entities"
)

func TestFromEstimate(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("BRT", -3*3600))
	e := entities.Estimate{
		ID: "est-1",
		EstimateFields: entities.EstimateFields{
			ProjectID:     "p1",
			Description:   "Kitchen remodel",
			MaterialsCost: 10000,
			LaborCost:     12000,
			OverheadCost:  2000,
			ProfitMargin:  4000,
		},
		TotalCost: 28000,
		Status:    entities.EstimateStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromEstimate(e)
	if res.ID != "est-1" || res.ProjectID != "p1" || res.TotalCost != 28000 || res.Status != "draft" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.LineItems == nil {
		t.Fatalf("expected non-nil line items")
	}
	if res.CreatedAt.Location() != time.UTC || !res.CreatedAt.Equal(now) {
		t.Fatalf("expected UTC created_at, got %v", res.CreatedAt)
	}

	body, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"line_items":[]`, `"lead_id":null`, `"created_at":"2024-01-02T06:04:05Z"`} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("expected %s in %s", want, body)
		}
	}
}

func TestFromProject(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	desc := "two storey"
	p := entities.Project{
		ID: "p1",
		ProjectFields: entities.ProjectFields{
			Name:          "House",
			Description:   &desc,
			EstimatedCost: 100,
			StartDate:     &start,
		},
		Status:     entities.ProjectStatusActive,
		ActualCost: 0,
	}

	res := FromProject(p)
	if res.Status != "active" || res.Description == nil || *res.Description != desc {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.StartDate == nil || !res.StartDate.Equal(start) || res.EndDate != nil {
		t.Fatalf("unexpected dates: %v / %v", res.StartDate, res.EndDate)
	}
}

func TestListMappersNeverNil(t *testing.T) {
	if got := FromProjects(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty projects, got %#v", got)
	}
	if got := FromLeads(nil); got == nil {
		t.Fatalf("expected empty leads")
	}
	if got := FromMaterials(nil); got == nil {
		t.Fatalf("expected empty materials")
	}
	if got := FromEstimates(nil); got == nil {
		t.Fatalf("expected empty estimates")
	}
	if got := FromProposals(nil); got == nil {
		t.Fatalf("expected empty proposals")
	}
}

func TestFromLeadMaterialProposal(t *testing.T) {
	l := FromLead(entities.Lead{ID: "l1", LeadFields: entities.LeadFields{Source: "website"}, Status: entities.LeadStatusNew})
	if l.Source != "website" || l.Status != "new" {
		t.Fatalf("unexpected lead: %+v", l)
	}

	m := FromMaterial(entities.Material{ID: "m1", MaterialFields: entities.MaterialFields{Name: "Oak Flooring", CostPerUnit: 8.5}})
	if m.Name != "Oak Flooring" || m.CostPerUnit != 8.5 {
		t.Fatalf("unexpected material: %+v", m)
	}

	p := FromProposal(entities.Proposal{ID: "pr1", ProposalFields: entities.ProposalFields{EstimateID: "e1"}, Status: entities.ProposalStatusAccepted})
	if p.EstimateID != "e1" || p.Status != "accepted" || p.ValidUntil != nil {
		t.Fatalf("unexpected proposal: %+v", p)
	}
}

func TestDeleted(t *testing.T) {
	body, _ := json.Marshal(Deleted("Material"))
	if string(body) != `{"message":"Material deleted successfully"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}
