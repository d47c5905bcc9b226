package entities

// ActionItem is a follow-up task tracked against an engagement. Items arrive
// from the UI, from external systems (Source "external_system"), or from
// document extraction, and may reference the emails they came from.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//
// Legacy items share the raw-record shapes of the other imported tables, so
// only the normalize package builds this struct from raw items.
type ActionItem struct {
	ID             string   `json:"id"`
	EngagementID   string   `json:"engagementId"`
	Description    string   `json:"description"`
	Owner          string   `json:"owner,omitempty"`
	AssignedTo     string   `json:"assignedTo,omitempty"`
	DueDate        string   `json:"dueDate,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	Status         string   `json:"status"`
	Source         string   `json:"source,omitempty"`
	SourceDocument string   `json:"sourceDocument,omitempty"`
	RelatedEmails  []string `json:"relatedEmails,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ActionItemStatusOpen is the default lifecycle state for new items.
const ActionItemStatusOpen = "open"
