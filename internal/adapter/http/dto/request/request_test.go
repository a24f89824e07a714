package request

import (
	"testing"

	"crewlo/internal/domain/entities"
)

func ptr[T any](v T) *T { return &v }

func TestEstimateRequest_ToFields(t *testing.T) {
	r := EstimateRequest{
		ProjectID:     ptr("p1"),
		LeadID:        ptr("l1"),
		Description:   ptr("Kitchen remodel"),
		MaterialsCost: ptr(10000.0),
		LaborCost:     ptr(12000.0),
		OverheadCost:  ptr(2000.0),
		ProfitMargin:  ptr(4000.0),
	}
	f := r.ToFields()
	if f.ComputeTotal() != 28000 {
		t.Fatalf("expected total 28000, got %v", f.ComputeTotal())
	}
	if f.LineItems == nil || len(f.LineItems) != 0 {
		t.Fatalf("expected empty line items, got %#v", f.LineItems)
	}
	if f.LeadID == nil || *f.LeadID != "l1" {
		t.Fatalf("lead id not kept: %v", f.LeadID)
	}

	r.LineItems = []entities.LineItem{{"label": "cabinets", "quantity": 4.0}}
	if got := r.ToFields().LineItems; len(got) != 1 || got[0]["label"] != "cabinets" {
		t.Fatalf("unexpected line items: %#v", got)
	}
}

func TestProjectRequest_ToFields(t *testing.T) {
	r := ProjectRequest{
		Name:        ptr("Deck"),
		Address:     ptr("1 Main"),
		ClientID:    ptr("c1"),
		ProjectType: ptr("residential"),
		StartDate:   ptr("2024-06-01"),
		EndDate:     ptr(""),
	}
	f := r.ToFields()
	if f.EstimatedCost != 0 {
		t.Fatalf("expected default estimated_cost 0, got %v", f.EstimatedCost)
	}
	if f.StartDate == nil || f.StartDate.Format("2006-01-02") != "2024-06-01" {
		t.Fatalf("unexpected start date: %v", f.StartDate)
	}
	if f.EndDate != nil {
		t.Fatalf("expected nil end date, got %v", f.EndDate)
	}
}

func TestLeadAndMaterialRequest_ToFields(t *testing.T) {
	l := LeadRequest{Name: ptr("Ann"), EstimatedBudget: ptr(1500.0), Notes: ptr("call after 5")}.ToFields()
	if l.Name != "Ann" || l.EstimatedBudget != 1500 || l.Notes == nil || *l.Notes != "call after 5" {
		t.Fatalf("unexpected lead fields: %+v", l)
	}
	if l.Source != entities.DefaultLeadSource {
		t.Fatalf("expected default source for omitted field, got %q", l.Source)
	}
	if got := (LeadRequest{Source: ptr("")}).ToFields().Source; got != "" {
		t.Fatalf("expected explicit empty source kept, got %q", got)
	}
	if got := (LeadRequest{Source: ptr("referral")}).ToFields().Source; got != "referral" {
		t.Fatalf("expected referral, got %q", got)
	}

	m := MaterialRequest{Name: ptr("Oak Flooring"), Category: ptr("flooring"), Unit: ptr("sq ft"), CostPerUnit: ptr(8.5)}.ToFields()
	if m.Name != "Oak Flooring" || m.CostPerUnit != 8.5 || m.Supplier != nil {
		t.Fatalf("unexpected material fields: %+v", m)
	}
}

func TestProposalRequest_ToFields(t *testing.T) {
	p := ProposalRequest{EstimateID: ptr("e1"), Title: ptr("t"), Content: ptr("c"), Terms: ptr("x"), ValidUntil: ptr("2024-12-31T10:00:00+02:00")}.ToFields()
	if p.ValidUntil == nil {
		t.Fatalf("expected valid_until")
	}
	if p.ValidUntil.Location().String() != "UTC" || p.ValidUntil.Hour() != 8 {
		t.Fatalf("expected UTC normalisation, got %v", p.ValidUntil)
	}
}
