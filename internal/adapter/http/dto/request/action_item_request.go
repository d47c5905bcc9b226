package request

type ActionItemRequest struct {
	EngagementID  string   `json:"engagementId"`
	Description   string   `json:"description"`
	Owner         string   `json:"owner"`
	AssignedTo    string   `json:"assignedTo"`
	DueDate       string   `json:"dueDate"`
	Priority      string   `json:"priority"`
	Status        string   `json:"status"`
	RelatedEmails []string `json:"relatedEmails"`
}

func (r ActionItemRequest) Payload() map[string]any {
	payload := map[string]any{
		"engagementId": r.EngagementID,
		"description":  r.Description,
		"owner":        r.Owner,
		"assignedTo":   r.AssignedTo,
		"dueDate":      r.DueDate,
		"priority":     r.Priority,
		"status":       r.Status,
	}
	if len(r.RelatedEmails) > 0 {
		emails := make([]any, 0, len(r.RelatedEmails))
		for _, e := range r.RelatedEmails {
			emails = append(emails, e)
		}
		payload["relatedEmails"] = emails
	}
	return payload
}
