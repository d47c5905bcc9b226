package normalize

import (
	"encoding/json"
	"reflect"
	"testing"

	"engagetrack/internal/domain/entities"
)

// asRaw round-trips a normalized entity back to raw-record form so the
// idempotence tests can re-normalize it.
func asRaw(t *testing.T, v any) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return m
}

func TestCustomer(t *testing.T) {
	t.Run("legacy record with wrapped id and flat location", func(t *testing.T) {
		raw := map[string]any{
			"_id":      map[string]any{"$oid": "65a1b2"},
			"name":     "Acme Corp",
			"industry": "Technology",
			"address":  "1 Main St",
			"city":     "Springfield",
			"state":    "IL",
			"zipCode":  "62701",
			"country":  "USA",
			"phone":    "555-0100",
			"email":    "ops@acme.example",
		}

		c, err := Customer(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "65a1b2" {
			t.Fatalf("expected id 65a1b2, got %q", c.ID)
		}
		if c.IndustryColorClass != "tech" {
			t.Fatalf("expected industry color tech, got %q", c.IndustryColorClass)
		}
		if c.Status != entities.CustomerStatusActive {
			t.Fatalf("expected default active status, got %q", c.Status)
		}
		if c.Location.City != "Springfield" || c.Location.Country != "USA" {
			t.Fatalf("flat location fields not lifted: %+v", c.Location)
		}
		if c.ContactInfo.Phone != "555-0100" {
			t.Fatalf("flat contact fields not lifted: %+v", c.ContactInfo)
		}
	})

	t.Run("nested location wins over flat leftovers", func(t *testing.T) {
		raw := map[string]any{
			"id":       "c-1",
			"name":     "Globex",
			"location": map[string]any{"city": "Shelbyville"},
			"city":     "Springfield",
		}

		c, err := Customer(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Location.City != "Shelbyville" {
			t.Fatalf("expected nested city, got %q", c.Location.City)
		}
	})

	t.Run("status inactive preserved case-insensitively", func(t *testing.T) {
		c, err := Customer(map[string]any{"id": "c-2", "status": "Inactive"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Status != entities.CustomerStatusInactive {
			t.Fatalf("expected inactive, got %q", c.Status)
		}
	})

	t.Run("engagement count accepts numeric string", func(t *testing.T) {
		c, err := Customer(map[string]any{"id": "c-3", "engagements": "4"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.EngagementCount != 4 {
			t.Fatalf("expected 4 engagements, got %d", c.EngagementCount)
		}
	})

	t.Run("missing identifier rejected", func(t *testing.T) {
		if _, err := Customer(map[string]any{"name": "orphan"}); err == nil {
			t.Fatal("expected error for record without identifier")
		}
	})

	t.Run("normalization is idempotent", func(t *testing.T) {
		raw := map[string]any{
			"_id":       map[string]any{"$oid": "65a1b2"},
			"name":      "Acme Corp",
			"industry":  "retail",
			"status":    "inactive",
			"city":      "Springfield",
			"createdAt": "2024-03-01",
			"stakeholders": []any{
				map[string]any{"name": "Jane", "role": "sponsor"},
			},
		}

		first, err := Customer(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := Customer(asRaw(t, first))
		if err != nil {
			t.Fatalf("unexpected error on second pass: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("normalization not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
		}
	})
}

func TestEngagement(t *testing.T) {
	t.Run("legacy record with aliases", func(t *testing.T) {
		raw := map[string]any{
			"engagementId":  "e-1",
			"customerIdObj": map[string]any{"$oid": "c-9"},
			"name":          "Cloud Migration",
			"type":          "Migration",
			"status":        "paused",
			"ryg_status":    "Red",
			"msa": map[string]any{
				"reference": "MSA-77",
				"value":     "125000.50",
				"start":     "2024-01-15",
				"end":       "2025-01-15",
			},
		}

		e, err := Engagement(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.ID != "e-1" || e.CustomerID != "c-9" {
			t.Fatalf("identifier resolution failed: %+v", e)
		}
		if e.TypeColorClass != "migration-color" {
			t.Fatalf("expected migration-color, got %q", e.TypeColorClass)
		}
		if e.Status != entities.EngagementStatusPaused || e.RYGStatus != entities.RYGRed {
			t.Fatalf("status normalization failed: %+v", e)
		}
		if e.MSA == nil {
			t.Fatal("expected msa contract")
		}
		if e.MSA.Value != 125000.50 {
			t.Fatalf("expected string value coerced, got %v", e.MSA.Value)
		}
		if e.MSA.StartDate != "2024-01-15T00:00:00Z" || e.MSA.EndDate != "2025-01-15T00:00:00Z" {
			t.Fatalf("date aliases not canonicalized: %+v", e.MSA)
		}
	})

	t.Run("unknown statuses default", func(t *testing.T) {
		e, err := Engagement(map[string]any{"id": "e-2", "status": "archived", "ryg_status": "purple"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Status != entities.EngagementStatusActive || e.RYGStatus != entities.RYGGreen {
			t.Fatalf("expected active/green defaults, got %q/%q", e.Status, e.RYGStatus)
		}
	})

	t.Run("all-empty contract collapses to nil", func(t *testing.T) {
		e, err := Engagement(map[string]any{
			"id":  "e-3",
			"sow": map[string]any{"reference": "", "startDate": ""},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.SOW != nil {
			t.Fatalf("expected nil sow, got %+v", e.SOW)
		}
	})

	t.Run("explicit zero value keeps contract present", func(t *testing.T) {
		e, err := Engagement(map[string]any{
			"id":  "e-4",
			"msa": map[string]any{"value": 0.0},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.MSA == nil || e.MSA.Value != 0 {
			t.Fatalf("expected present msa with zero value, got %+v", e.MSA)
		}
	})

	t.Run("missing customer reference is not an error", func(t *testing.T) {
		e, err := Engagement(map[string]any{"id": "e-5", "name": "Orphan"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.CustomerID != "" {
			t.Fatalf("expected empty customer id, got %q", e.CustomerID)
		}
	})

	t.Run("normalization is idempotent", func(t *testing.T) {
		raw := map[string]any{
			"engagementId":  "e-6",
			"customerIdObj": map[string]any{"$oid": "c-1"},
			"type":          "support",
			"msa":           map[string]any{"value": 0.0, "end": "2030-06-30"},
			"updatedAt":     "2024-05-01T10:00:00Z",
		}

		first, err := Engagement(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := Engagement(asRaw(t, first))
		if err != nil {
			t.Fatalf("unexpected error on second pass: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("normalization not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
		}
	})
}

func TestIsoDate(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"2024-01-02", "2024-01-02T00:00:00Z"},
		{"2024-01-02T15:04:05", "2024-01-02T15:04:05Z"},
		{"2024-01-02T15:04:05Z", "2024-01-02T15:04:05Z"},
		{"2024-01-02T15:04:05.123Z", "2024-01-02T15:04:05Z"},
		{"  2024-01-02  ", "2024-01-02T00:00:00Z"},
		{"not a date", ""},
		{"", ""},
		{nil, ""},
		{42.0, ""},
	}
	for _, tc := range cases {
		if got := isoDate(tc.in); got != tc.want {
			t.Fatalf("isoDate(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
