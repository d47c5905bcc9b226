package interfaces

import (
	"context"

	"engagetrack/internal/domain/entities"
)

// IUserRepository persists dashboard users keyed by the identity provider's
// subject id. GetByAzureID returns a zero-value user when absent.

type IUserRepository interface {
	GetByAzureID(ctx context.Context, azureID string) (entities.User, error)
	Upsert(ctx context.Context, user entities.User) (entities.User, error)
}
