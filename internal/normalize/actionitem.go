package normalize

import (
	"engagetrack/internal/domain/entities"
)

// ActionItem normalizes a raw action-item record. The engagement reference
// is accepted plain or wrapped; a missing status defaults to open.
func ActionItem(raw map[string]any) (entities.ActionItem, error) {
	id, err := ResolveID(raw)
	if err != nil {
		return entities.ActionItem{}, err
	}

	a := entities.ActionItem{
		ID:             id,
		EngagementID:   ResolveRef(raw, "engagementId", "engagementId.$oid"),
		Description:    stringField(raw, "description"),
		Owner:          stringField(raw, "owner"),
		AssignedTo:     stringField(raw, "assignedTo"),
		DueDate:        isoDate(raw["dueDate"]),
		Priority:       stringField(raw, "priority"),
		Status:         stringField(raw, "status"),
		Source:         stringField(raw, "source"),
		SourceDocument: stringField(raw, "sourceDocument"),
		RelatedEmails:  stringList(raw["relatedEmails"]),
		CreatedAt:      isoDate(raw["createdAt"]),
		UpdatedAt:      isoDate(raw["updatedAt"]),
	}
	if a.Status == "" {
		a.Status = entities.ActionItemStatusOpen
	}
	return a, nil
}
