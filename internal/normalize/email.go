package normalize

import (
	"engagetrack/internal/domain/entities"
)

// Email normalizes a raw email record.
func Email(raw map[string]any) (entities.Email, error) {
	id, err := ResolveID(raw)
	if err != nil {
		return entities.Email{}, err
	}

	return entities.Email{
		ID:           id,
		EngagementID: ResolveRef(raw, "engagementId", "engagementId.$oid"),
		Subject:      stringField(raw, "subject"),
		Sender:       stringField(raw, "sender"),
		Recipients:   stringList(raw["recipients"]),
		Content:      stringField(raw, "content"),
		ReceivedAt:   isoDate(raw["receivedAt"]),
		Source:       stringField(raw, "source"),
		ThreadID:     stringField(raw, "threadId"),
	}, nil
}
