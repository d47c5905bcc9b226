package response

import (
	"time"

	"engagetrack/internal/domain/entities"
)

type UserResponse struct {
	FullName  string   `json:"full_name"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
	AzureID   string   `json:"azure_id"`
	LastLogin string   `json:"last_login"`
}

func FromUser(u entities.User) UserResponse {
	resp := UserResponse{
		FullName: u.FullName,
		Username: u.Username,
		Email:    u.Email,
		Roles:    u.Roles,
		AzureID:  u.AzureID,
	}
	if !u.LastLogin.IsZero() {
		resp.LastLogin = u.LastLogin.UTC().Format(time.RFC3339)
	}
	return resp
}
