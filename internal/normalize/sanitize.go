package normalize

// SanitizePayload reduces a full form-field set to the minimal outbound
// payload: empty strings and nils are dropped, nested groups are filtered per
// leaf and dropped entirely when nothing survives, and empty lists are
// dropped. Numbers are always kept: an explicit 0 in a contract value field
// is a deliberate entry, not an absence.
//
// The input is not mutated.
func SanitizePayload(payload map[string]any) map[string]any {
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		if sv, keep := sanitizeValue(v); keep {
			out[k] = sv
		}
	}
	return out
}

func sanitizeValue(v any) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case string:
		if t == "" {
			return nil, false
		}
		return t, true
	case map[string]any:
		m := SanitizePayload(t)
		if len(m) == 0 {
			return nil, false
		}
		return m, true
	case []any:
		items := make([]any, 0, len(t))
		for _, it := range t {
			if sv, keep := sanitizeValue(it); keep {
				items = append(items, sv)
			}
		}
		if len(items) == 0 {
			return nil, false
		}
		return items, true
	case []string:
		items := make([]string, 0, len(t))
		for _, s := range t {
			if s != "" {
				items = append(items, s)
			}
		}
		if len(items) == 0 {
			return nil, false
		}
		return items, true
	default:
		// numbers (including 0), bools, and anything already typed pass
		// through untouched
		return v, true
	}
}
