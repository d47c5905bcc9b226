package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"engagetrack/internal/domain/entities"
	"engagetrack/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrAuthCodeRequired = errors.New("authorization code is required")
	ErrUserNotFound     = errors.New("user not found")
)

// IAuthUseCase drives the session lifecycle. Login/consent happens entirely
// at the external provider; this layer exchanges the returned code, provisions
// the user on first sight, and mints the session token for the auth cookie.

type IAuthUseCase interface {
	LoginURL(state string) string
	HandleCallback(ctx context.Context, code string) (entities.User, string, error)
	Profile(ctx context.Context, azureID string) (entities.User, error)
}

type AuthUseCase struct {
	provider interfaces.IIdentityProvider
	users    interfaces.IUserRepository
	sessions interfaces.ISessionTokens
	log      *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(provider interfaces.IIdentityProvider, users interfaces.IUserRepository, sessions interfaces.ISessionTokens, log *zap.Logger) *AuthUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthUseCase{provider: provider, users: users, sessions: sessions, log: log}
}

func (u *AuthUseCase) LoginURL(state string) string {
	return u.provider.AuthCodeURL(state)
}

func (u *AuthUseCase) HandleCallback(ctx context.Context, code string) (entities.User, string, error) {
	if strings.TrimSpace(code) == "" {
		return entities.User{}, "", ErrAuthCodeRequired
	}

	identity, err := u.provider.Exchange(ctx, code)
	if err != nil {
		return entities.User{}, "", err
	}

	existing, err := u.users.GetByAzureID(ctx, identity.AzureID)
	if err != nil {
		return entities.User{}, "", err
	}

	user := entities.User{
		AzureID:   identity.AzureID,
		Username:  identity.Username,
		Email:     identity.Email,
		FullName:  identity.FullName,
		Roles:     []string{"user"},
		LastLogin: time.Now().UTC(),
	}
	if existing.AzureID != "" && len(existing.Roles) > 0 {
		user.Roles = existing.Roles
	}

	user, err = u.users.Upsert(ctx, user)
	if err != nil {
		return entities.User{}, "", err
	}

	token, err := u.sessions.Issue(user)
	if err != nil {
		return entities.User{}, "", err
	}
	u.log.Info("user logged in", zap.String("azure_id", user.AzureID))
	return user, token, nil
}

func (u *AuthUseCase) Profile(ctx context.Context, azureID string) (entities.User, error) {
	azureID = strings.TrimSpace(azureID)
	if azureID == "" {
		return entities.User{}, ErrUserNotFound
	}

	user, err := u.users.GetByAzureID(ctx, azureID)
	if err != nil {
		return entities.User{}, err
	}
	if user.AzureID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
