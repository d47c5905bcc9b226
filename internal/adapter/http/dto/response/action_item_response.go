package response

import "engagetrack/internal/domain/entities"

type ActionItemResponse struct {
	entities.ActionItem
	LegacyID string `json:"_id"`
}

func FromActionItem(a entities.ActionItem) ActionItemResponse {
	return ActionItemResponse{ActionItem: a, LegacyID: a.ID}
}

func FromActionItems(items []entities.ActionItem) []ActionItemResponse {
	out := make([]ActionItemResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromActionItem(a))
	}
	return out
}
