package normalize

import "strings"

// IndustryColorClass maps a free-text industry to its display color class.
// The match is case-insensitive and tolerates surrounding whitespace; any
// unrecognized industry (including "") falls into the default bucket.
//
// This is the single mapping used by create, list, and detail paths alike.
func IndustryColorClass(industry string) string {
	switch strings.ToLower(strings.TrimSpace(industry)) {
	case "technology", "tech":
		return "tech"
	case "retail":
		return "retail"
	case "finance":
		return "finance"
	case "healthcare":
		return "healthcare"
	case "manufacturing":
		return "manufacturing"
	case "education":
		return "education"
	case "energy":
		return "energy"
	case "telecommunications", "telecom":
		return "telecom"
	case "software":
		return "software"
	default:
		return "default"
	}
}

var typeColorClasses = map[string]string{
	"migration":      "migration-color",
	"implementation": "implementation-color",
	"consulting":     "consulting-color",
	"consultation":   "consultation-color",
	"assessment":     "assessment-color",
	"support":        "support-color",
	"other":          "other-color",
}

// TypeColorClass maps an engagement type to its display color class with the
// same fallback policy as IndustryColorClass.
func TypeColorClass(engagementType string) string {
	if c, ok := typeColorClasses[strings.ToLower(strings.TrimSpace(engagementType))]; ok {
		return c
	}
	return "default-color"
}
