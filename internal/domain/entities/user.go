package entities

import "time"

// User is a dashboard user provisioned on first login through the identity
// provider. AzureID is the provider's stable subject identifier.
type User struct {
	AzureID   string    `json:"azure_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Roles     []string  `json:"roles"`
	LastLogin time.Time `json:"last_login"`
}

// ProviderIdentity is the identity claims returned by the external provider
// after a successful authorization-code exchange.
type ProviderIdentity struct {
	AzureID  string
	Username string
	Email    string
	FullName string
}
