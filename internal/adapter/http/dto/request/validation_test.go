package request

import (
	"strings"
	"testing"
)

func bindBody(t *testing.T, body string, obj any) []FieldError {
	t.Helper()
	RegisterValidators()
	return Bind(strings.NewReader(body), obj)
}

func byField(t *testing.T, details []FieldError) map[string]FieldError {
	t.Helper()
	fields := map[string]FieldError{}
	for _, d := range details {
		if len(d.Loc) != 2 || d.Loc[0] != "body" {
			t.Fatalf("unexpected loc: %v", d.Loc)
		}
		fields[d.Loc[1]] = d
	}
	return fields
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "2024-06-01", want: "2024-06-01T00:00:00Z", ok: true},
		{in: "2024-06-01T09:30:00", want: "2024-06-01T09:30:00Z", ok: true},
		{in: "2024-06-01T09:30:00.123456", want: "2024-06-01T09:30:00.123456Z", ok: true},
		{in: "2024-06-01T09:30:00-03:00", want: "2024-06-01T12:30:00Z", ok: true},
		{in: "June 1st", ok: false},
		{in: "", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if !tc.ok {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s := got.Format("2006-01-02T15:04:05.999999999Z07:00"); s != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, s)
			}
		})
	}
}

func TestBind_MissingFields(t *testing.T) {
	var r MaterialRequest
	details := bindBody(t, `{"name":"Oak Flooring","unit":"sq ft"}`, &r)

	fields := byField(t, details)
	if len(fields) != 2 {
		t.Fatalf("expected 2 field errors, got %+v", details)
	}
	for _, name := range []string{"category", "cost_per_unit"} {
		fe, ok := fields[name]
		if !ok {
			t.Fatalf("missing error for %s: %+v", name, details)
		}
		if fe.Type != "missing" || fe.Msg != "Field required" {
			t.Fatalf("unexpected error for %s: %+v", name, fe)
		}
	}
}

func TestBind_ZeroCostIsPresent(t *testing.T) {
	var r EstimateRequest
	details := bindBody(t, `{"project_id":"p1","description":"d","materials_cost":0,"labor_cost":0,"overhead_cost":0,"profit_margin":0}`, &r)
	if details != nil {
		t.Fatalf("unexpected details: %+v", details)
	}
	if r.MaterialsCost == nil || *r.MaterialsCost != 0 {
		t.Fatalf("expected explicit zero, got %v", r.MaterialsCost)
	}
}

func TestBind_EmptyStringIsPresent(t *testing.T) {
	var r ProposalRequest
	details := bindBody(t, `{"estimate_id":"e1","title":"","content":"","terms":"t"}`, &r)
	if details != nil {
		t.Fatalf("unexpected details: %+v", details)
	}
	f := r.ToFields()
	if f.Title != "" || f.EstimateID != "e1" {
		t.Fatalf("unexpected fields: %+v", f)
	}
}

func TestBind_NullIsMissing(t *testing.T) {
	var r ProposalRequest
	details := bindBody(t, `{"estimate_id":"e1","title":null,"content":"c","terms":"t"}`, &r)
	if len(details) != 1 || details[0].Loc[1] != "title" || details[0].Type != "missing" {
		t.Fatalf("unexpected details: %+v", details)
	}
}

func TestBind_BadDate(t *testing.T) {
	var r ProjectRequest
	details := bindBody(t, `{"name":"n","address":"a","client_id":"c","project_type":"p","start_date":"soon"}`, &r)
	if len(details) != 1 || details[0].Loc[1] != "start_date" || details[0].Type != "datetime_parsing" {
		t.Fatalf("unexpected details: %+v", details)
	}
}

func TestBind_WrongType(t *testing.T) {
	var r MaterialRequest
	details := bindBody(t, `{"name":"n","category":"c","unit":"u","cost_per_unit":"cheap"}`, &r)
	if len(details) != 1 || len(details[0].Loc) != 2 || details[0].Loc[1] != "cost_per_unit" || details[0].Type != "type_error" {
		t.Fatalf("unexpected details: %+v", details)
	}
	if details[0].Msg != "Input should be a valid number" {
		t.Fatalf("unexpected message: %s", details[0].Msg)
	}
}

func TestBind_WrongTypeAndMissingFieldsAreAllReported(t *testing.T) {
	var r EstimateRequest
	details := bindBody(t, `{"project_id":"p","description":"d","materials_cost":"x","labor_cost":1}`, &r)

	fields := byField(t, details)
	if len(details) != 3 || len(fields) != 3 {
		t.Fatalf("expected 3 field errors, got %+v", details)
	}
	if fields["materials_cost"].Type != "type_error" {
		t.Fatalf("expected type_error for materials_cost, got %+v", fields["materials_cost"])
	}
	for _, name := range []string{"overhead_cost", "profit_margin"} {
		if fields[name].Type != "missing" {
			t.Fatalf("expected missing for %s, got %+v", name, fields[name])
		}
	}
	// reported in declaration order
	if details[0].Loc[1] != "materials_cost" || details[1].Loc[1] != "overhead_cost" || details[2].Loc[1] != "profit_margin" {
		t.Fatalf("unexpected order: %+v", details)
	}
}

func TestBind_SeveralWrongTypes(t *testing.T) {
	var r LeadRequest
	details := bindBody(t, `{"name":1,"email":"e","phone":true,"address":"a","project_type":"p","estimated_budget":"lots"}`, &r)

	fields := byField(t, details)
	for _, name := range []string{"name", "phone", "estimated_budget"} {
		if fields[name].Type != "type_error" {
			t.Fatalf("expected type_error for %s, got %+v", name, details)
		}
	}
	if len(details) != 3 {
		t.Fatalf("expected 3 field errors, got %+v", details)
	}
}

func TestBind_MalformedJSON(t *testing.T) {
	var r LeadRequest
	details := bindBody(t, `{"name":`, &r)
	if len(details) != 1 || len(details[0].Loc) != 1 || details[0].Type != "json_invalid" {
		t.Fatalf("unexpected details: %+v", details)
	}
}

func TestBind_NotAnObject(t *testing.T) {
	var r LeadRequest
	details := bindBody(t, `[1,2]`, &r)
	if len(details) != 1 || len(details[0].Loc) != 1 || details[0].Type != "json_invalid" {
		t.Fatalf("unexpected details: %+v", details)
	}
}

func TestBind_EmptyBody(t *testing.T) {
	var r LeadRequest
	details := bindBody(t, ``, &r)
	if len(details) != 1 || details[0].Type != "missing" {
		t.Fatalf("unexpected details: %+v", details)
	}
}
