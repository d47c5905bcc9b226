package entities

// Email is correspondence captured against an engagement, either forwarded by
// a user or ingested from an external mailbox integration.
//
// Storage model (DynamoDB):
//   - PK: id (string)
type Email struct {
	ID           string   `json:"id"`
	EngagementID string   `json:"engagementId"`
	Subject      string   `json:"subject"`
	Sender       string   `json:"sender"`
	Recipients   []string `json:"recipients,omitempty"`
	Content      string   `json:"content,omitempty"`
	ReceivedAt   string   `json:"receivedAt,omitempty"`
	Source       string   `json:"source,omitempty"`
	ThreadID     string   `json:"threadId,omitempty"`
}
