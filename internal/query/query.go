// Package query filters in-memory collections of normalized entities with a
// combination of free-text and structured criteria. The same engine backs
// customer and engagement search.
package query

import "strings"

// Field describes one filterable attribute of T. Searchable fields
// participate in free-text matching; Exact fields (enumerations such as
// status) compare by equality instead of substring.
type Field[T any] struct {
	Name       string
	Get        func(T) string
	Searchable bool
	Exact      bool
}

// Criteria combines an optional free-text query with structured per-field
// filters. Empty text matches everything; an empty structured value means no
// constraint for that key.
type Criteria struct {
	Text       string
	Structured map[string]string
}

// Filter returns the items satisfying the free-text match AND every active
// structured filter. Input order is preserved; absent field values are
// treated as empty strings and never cause a failure.
func Filter[T any](items []T, c Criteria, fields []Field[T]) []T {
	byName := make(map[string]Field[T], len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}

	text := strings.ToLower(strings.TrimSpace(c.Text))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !matchesText(item, text, fields) {
			continue
		}
		if !matchesStructured(item, c.Structured, byName) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesText[T any](item T, text string, fields []Field[T]) bool {
	if text == "" {
		return true
	}
	for _, f := range fields {
		if !f.Searchable {
			continue
		}
		if strings.Contains(strings.ToLower(f.Get(item)), text) {
			return true
		}
	}
	return false
}

func matchesStructured[T any](item T, structured map[string]string, byName map[string]Field[T]) bool {
	for key, want := range structured {
		if want == "" {
			continue
		}
		f, ok := byName[key]
		if !ok {
			// unknown filter key carries no constraint
			continue
		}
		got := f.Get(item)
		if f.Exact {
			if got != want {
				return false
			}
			continue
		}
		if !strings.Contains(strings.ToLower(got), strings.ToLower(want)) {
			return false
		}
	}
	return true
}
