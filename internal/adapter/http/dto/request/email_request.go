package request

type EmailRequest struct {
	EngagementID string   `json:"engagementId"`
	Subject      string   `json:"subject"`
	Sender       string   `json:"sender"`
	Recipients   []string `json:"recipients"`
	Content      string   `json:"content"`
	Source       string   `json:"source"`
	ThreadID     string   `json:"threadId"`
}

func (r EmailRequest) Payload() map[string]any {
	payload := map[string]any{
		"engagementId": r.EngagementID,
		"subject":      r.Subject,
		"sender":       r.Sender,
		"content":      r.Content,
		"source":       r.Source,
		"threadId":     r.ThreadID,
	}
	if len(r.Recipients) > 0 {
		recipients := make([]any, 0, len(r.Recipients))
		for _, rcpt := range r.Recipients {
			recipients = append(recipients, rcpt)
		}
		payload["recipients"] = recipients
	}
	return payload
}
