package interfaces

import (
	"context"

	"engagetrack/internal/domain/entities"
)

// IIdentityProvider abstracts the external identity provider (Azure AD).
// The service only redirects to the provider's consent page and exchanges
// the returned authorization code; everything else about the session is
// local.

type IIdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (entities.ProviderIdentity, error)
}

// ISessionTokens mints and verifies the session token carried in the auth
// cookie that gates protected views.

type ISessionTokens interface {
	Issue(user entities.User) (string, error)
	Verify(token string) (azureID string, err error)
}
