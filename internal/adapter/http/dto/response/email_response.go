package response

import "engagetrack/internal/domain/entities"

type EmailResponse struct {
	entities.Email
	LegacyID string `json:"_id"`
}

func FromEmail(e entities.Email) EmailResponse {
	return EmailResponse{Email: e, LegacyID: e.ID}
}

func FromEmails(emails []entities.Email) []EmailResponse {
	out := make([]EmailResponse, 0, len(emails))
	for _, e := range emails {
		out = append(out, FromEmail(e))
	}
	return out
}
