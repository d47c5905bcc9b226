// Package normalize converts raw, shape-variable backend records into the
// canonical view models in entities. Tables were imported from a legacy
// MongoDB deployment, so identifiers may appear as `id`, `_id`, or wrapped
// `{"$oid": ...}` objects, location/contact groups may be nested or flat, and
// contract sub-documents may be partially populated. Every read path funnels
// through this package exactly once; no other component consumes raw fields.
package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"engagetrack/internal/domain/entities"
)

// Customer normalizes a raw customer record. It fails only when the record
// has no resolvable identifier; every other defect degrades to a documented
// default. The function is pure and does not mutate its input.
func Customer(raw map[string]any) (entities.Customer, error) {
	id, err := ResolveID(raw)
	if err != nil {
		return entities.Customer{}, err
	}

	industry := stringField(raw, "industry")
	c := entities.Customer{
		ID:                 id,
		Name:               stringField(raw, "name"),
		Industry:           industry,
		IndustryColorClass: IndustryColorClass(industry),
		Description:        stringField(raw, "description"),
		Logo:               stringField(raw, "logo"),
		Status:             customerStatus(stringField(raw, "status")),
		Location:           location(raw),
		ContactInfo:        contactInfo(raw),
		Stakeholders:       stakeholders(raw),
		Documents:          documentRefs(raw["documents"]),
		CreatedAt:          isoDate(raw["createdAt"]),
		UpdatedAt:          isoDate(raw["updatedAt"]),
	}
	if n, ok := numberField(raw, "engagements"); ok {
		c.EngagementCount = int(n)
	}
	return c, nil
}

// Engagement normalizes a raw engagement record, additionally accepting the
// identifier under `engagementId` and the customer reference under
// `customerIdObj` (wrapped or plain).
func Engagement(raw map[string]any) (entities.Engagement, error) {
	id, err := ResolveID(raw, "engagementId")
	if err != nil {
		return entities.Engagement{}, err
	}

	engType := stringField(raw, "type")
	e := entities.Engagement{
		ID:             id,
		CustomerID:     ResolveRef(raw, "customerId", "customerIdObj", "customerIdObj.$oid"),
		Name:           stringField(raw, "name"),
		Type:           engType,
		TypeColorClass: TypeColorClass(engType),
		Status:         engagementStatus(stringField(raw, "status")),
		RYGStatus:      rygStatus(stringField(raw, "ryg_status")),
		Description:    stringField(raw, "description"),
		MSA:            contract(subMap(raw, "msa")),
		SOW:            contract(subMap(raw, "sow")),
		Documents:      documentRefs(raw["documents"]),
		CreatedAt:      isoDate(raw["createdAt"]),
		UpdatedAt:      isoDate(raw["updatedAt"]),
	}
	return e, nil
}

func customerStatus(s string) entities.CustomerStatus {
	if strings.EqualFold(s, string(entities.CustomerStatusInactive)) {
		return entities.CustomerStatusInactive
	}
	return entities.CustomerStatusActive
}

func engagementStatus(s string) entities.EngagementStatus {
	switch strings.ToLower(s) {
	case string(entities.EngagementStatusInactive):
		return entities.EngagementStatusInactive
	case string(entities.EngagementStatusPaused):
		return entities.EngagementStatusPaused
	default:
		return entities.EngagementStatusActive
	}
}

func rygStatus(s string) entities.RYGStatus {
	switch strings.ToLower(s) {
	case string(entities.RYGYellow):
		return entities.RYGYellow
	case string(entities.RYGRed):
		return entities.RYGRed
	default:
		return entities.RYGGreen
	}
}

// location accepts both the nested {"location": {...}} form and the flat
// legacy form where address fields sit at the top level.
func location(raw map[string]any) entities.Location {
	loc := subMap(raw, "location")
	return entities.Location{
		Address: nestedOrFlat(loc, raw, "address"),
		City:    nestedOrFlat(loc, raw, "city"),
		State:   nestedOrFlat(loc, raw, "state"),
		ZipCode: nestedOrFlat(loc, raw, "zipCode"),
		Country: nestedOrFlat(loc, raw, "country"),
	}
}

func contactInfo(raw map[string]any) entities.ContactInfo {
	ci := subMap(raw, "contactInfo")
	return entities.ContactInfo{
		Phone:   nestedOrFlat(ci, raw, "phone"),
		Email:   nestedOrFlat(ci, raw, "email"),
		Website: nestedOrFlat(ci, raw, "website"),
	}
}

// contract builds an MSA/SOW record, accepting `start`/`end` as date-field
// aliases. An all-empty sub-document collapses to nil; an explicit value
// entry, including 0, keeps it present.
func contract(m map[string]any) *entities.Contract {
	if m == nil {
		return nil
	}
	c := entities.Contract{
		Reference: stringField(m, "reference"),
		StartDate: isoDate(firstPresent(m, "startDate", "start")),
		EndDate:   isoDate(firstPresent(m, "endDate", "end")),
		Documents: stringList(m["documents"]),
	}
	v, hasValue := numberField(m, "value")
	c.Value = v

	if !hasValue && c.Reference == "" && c.StartDate == "" && c.EndDate == "" && len(c.Documents) == 0 {
		return nil
	}
	return &c
}

func stakeholders(raw map[string]any) []entities.Stakeholder {
	items, ok := raw["stakeholders"].([]any)
	if !ok || len(items) == 0 {
		return nil
	}
	out := make([]entities.Stakeholder, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, entities.Stakeholder{
			Name: stringField(m, "name"),
			Role: stringField(m, "role"),
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func documentRefs(v any) []entities.DocumentRef {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil
	}
	out := make([]entities.DocumentRef, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		ref := entities.DocumentRef{
			Title:     stringField(m, "title"),
			Reference: stringField(m, "reference"),
			StartDate: isoDate(firstPresent(m, "startDate", "start")),
			EndDate:   isoDate(firstPresent(m, "endDate", "end")),
		}
		ref.Value, _ = numberField(m, "value")
		out = append(out, ref)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func subMap(raw map[string]any, key string) map[string]any {
	m, _ := raw[key].(map[string]any)
	return m
}

func nestedOrFlat(nested, raw map[string]any, key string) string {
	if nested != nil {
		if s := stringField(nested, key); s != "" {
			return s
		}
		return ""
	}
	return stringField(raw, key)
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// numberField reads a numeric attribute that legacy records may carry as a
// JSON number or as a decimal string. The second return reports whether the
// key held a usable number at all, so an explicit 0 is distinguishable from
// absence.
func numberField(m map[string]any, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch t := m[key].(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func firstPresent(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// isoDate canonicalizes a timestamp-ish value to RFC 3339 UTC. Unparseable
// or non-string input degrades to "" so renderers can substitute their own
// placeholder instead of crashing.
func isoDate(v any) string {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return ""
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return ""
}

// ParseDate parses a normalized date string; ok is false for "" or anything
// that survived normalization in a non-canonical form.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
