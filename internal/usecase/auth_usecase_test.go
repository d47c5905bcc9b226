package usecase

import (
	"context"
	"errors"
	"testing"

	"engagetrack/internal/domain/entities"
	mock_interfaces "engagetrack/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_HandleCallback(t *testing.T) {
	t.Run("code required", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil, nil)
		_, _, err := uc.HandleCallback(context.Background(), "  ")
		if !errors.Is(err, ErrAuthCodeRequired) {
			t.Fatalf("expected ErrAuthCodeRequired, got %v", err)
		}
	})

	t.Run("first login provisions user with default role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIIdentityProvider(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		sessions := mock_interfaces.NewMockISessionTokens(ctrl)
		uc := NewAuthUseCase(provider, users, sessions, nil)

		provider.EXPECT().Exchange(gomock.Any(), "code-1").Return(entities.ProviderIdentity{
			AzureID: "az-1", Username: "jdoe", Email: "jdoe@example.com", FullName: "J. Doe",
		}, nil)
		users.EXPECT().GetByAzureID(gomock.Any(), "az-1").Return(entities.User{}, nil)
		users.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if len(u.Roles) != 1 || u.Roles[0] != "user" {
					t.Fatalf("expected default role, got %v", u.Roles)
				}
				if u.LastLogin.IsZero() {
					t.Fatal("expected last login stamped")
				}
				return u, nil
			},
		)
		sessions.EXPECT().Issue(gomock.Any()).Return("token-1", nil)

		user, token, err := uc.HandleCallback(context.Background(), "code-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.AzureID != "az-1" || token != "token-1" {
			t.Fatalf("unexpected result: %+v %q", user, token)
		}
	})

	t.Run("returning user keeps existing roles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIIdentityProvider(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		sessions := mock_interfaces.NewMockISessionTokens(ctrl)
		uc := NewAuthUseCase(provider, users, sessions, nil)

		provider.EXPECT().Exchange(gomock.Any(), "code-2").Return(entities.ProviderIdentity{AzureID: "az-2"}, nil)
		users.EXPECT().GetByAzureID(gomock.Any(), "az-2").Return(entities.User{
			AzureID: "az-2", Roles: []string{"user", "admin"},
		}, nil)
		users.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if len(u.Roles) != 2 {
					t.Fatalf("expected existing roles preserved, got %v", u.Roles)
				}
				return u, nil
			},
		)
		sessions.EXPECT().Issue(gomock.Any()).Return("token-2", nil)

		if _, _, err := uc.HandleCallback(context.Background(), "code-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("exchange failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIIdentityProvider(ctrl)
		uc := NewAuthUseCase(provider, nil, nil, nil)

		provider.EXPECT().Exchange(gomock.Any(), "bad").Return(entities.ProviderIdentity{}, errors.New("provider down"))

		if _, _, err := uc.HandleCallback(context.Background(), "bad"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestAuthUseCase_Profile(t *testing.T) {
	t.Run("blank subject", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil, nil)
		if _, err := uc.Profile(context.Background(), " "); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("absent user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(nil, users, nil, nil)

		users.EXPECT().GetByAzureID(gomock.Any(), "az-404").Return(entities.User{}, nil)

		if _, err := uc.Profile(context.Background(), "az-404"); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(nil, users, nil, nil)

		users.EXPECT().GetByAzureID(gomock.Any(), "az-1").Return(entities.User{AzureID: "az-1", Username: "jdoe"}, nil)

		user, err := uc.Profile(context.Background(), "az-1")
		if err != nil || user.Username != "jdoe" {
			t.Fatalf("unexpected result: %+v %v", user, err)
		}
	})
}
