package normalize

import (
	"errors"
	"strings"
)

// ErrNoIdentifier is returned when a raw record exposes no usable identifier
// under any known field. Callers must reject the record; fabricating a
// synthetic id here would silently detach the record from its backend row.
var ErrNoIdentifier = errors.New("record has no resolvable identifier")

// ResolveID extracts the canonical string identifier from a raw backend
// record. Resolution order: `id`, then `_id`, then any extra aliases in the
// order supplied. Each candidate may be a plain string or a legacy MongoDB
// wrapper of the form {"$oid": "..."}; alias keys may use a dot path such as
// "customerIdObj.$oid".
func ResolveID(raw map[string]any, aliases ...string) (string, error) {
	keys := make([]string, 0, 2+len(aliases))
	keys = append(keys, "id", "_id")
	keys = append(keys, aliases...)

	for _, key := range keys {
		v, ok := lookupPath(raw, key)
		if !ok {
			continue
		}
		if s := unwrapID(v); s != "" {
			return s, nil
		}
	}
	return "", ErrNoIdentifier
}

// ResolveRef resolves a reference to another entity (e.g. an engagement's
// customer id) from the first candidate key that yields a non-empty string.
// Unlike ResolveID a missing reference is not an error; the caller decides
// how to treat the orphan.
func ResolveRef(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := lookupPath(raw, key)
		if !ok {
			continue
		}
		if s := unwrapID(v); s != "" {
			return s
		}
	}
	return ""
}

// unwrapID reduces the tagged union {plain string | {"$oid": string}} to a
// plain string. Anything else resolves to "".
func unwrapID(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		if oid, ok := t["$oid"].(string); ok {
			return strings.TrimSpace(oid)
		}
	}
	return ""
}

func lookupPath(raw map[string]any, key string) (any, bool) {
	if v, ok := raw[key]; ok {
		return v, true
	}
	if !strings.Contains(key, ".") {
		return nil, false
	}
	parts := strings.Split(key, ".")
	var cur any = raw
	for _, p := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
