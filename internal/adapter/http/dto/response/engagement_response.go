package response

import "engagetrack/internal/domain/entities"

type EngagementResponse struct {
	entities.Engagement
	LegacyID string `json:"_id"`
}

func FromEngagement(e entities.Engagement) EngagementResponse {
	return EngagementResponse{Engagement: e, LegacyID: e.ID}
}

func FromEngagements(engagements []entities.Engagement) []EngagementResponse {
	out := make([]EngagementResponse, 0, len(engagements))
	for _, e := range engagements {
		out = append(out, FromEngagement(e))
	}
	return out
}
