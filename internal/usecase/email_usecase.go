package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"engagetrack/internal/domain/entities"
	"engagetrack/internal/normalize"
	"engagetrack/internal/usecase/interfaces"
	"engagetrack/internal/viewmodel"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmailNotFound           = errors.New("email not found")
	ErrInvalidEmailID          = errors.New("invalid email id")
	ErrEmailSubjectRequired    = errors.New("email subject is required")
	ErrEmailEngagementRequired = errors.New("email engagement id is required")
)

// IEmailUseCase exposes the captured correspondence per engagement. Emails
// are append-only records; there is no update or delete.

type IEmailUseCase interface {
	List(ctx context.Context) ([]entities.Email, error)
	GetByID(ctx context.Context, id string) (entities.Email, error)
	Create(ctx context.Context, payload map[string]any) (entities.Email, error)
}

type EmailUseCase struct {
	emails interfaces.IEmailRepository
	log    *zap.Logger
}

var _ IEmailUseCase = (*EmailUseCase)(nil)

func NewEmailUseCase(emails interfaces.IEmailRepository, log *zap.Logger) *EmailUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &EmailUseCase{emails: emails, log: log}
}

func (u *EmailUseCase) List(ctx context.Context) ([]entities.Email, error) {
	raws, err := u.emails.List(ctx)
	if err != nil {
		return nil, err
	}
	store := viewmodel.NewEmailStore(u.log)
	store.Load(raws)
	return store.Items(), nil
}

func (u *EmailUseCase) GetByID(ctx context.Context, id string) (entities.Email, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Email{}, ErrInvalidEmailID
	}

	raw, err := u.emails.GetByID(ctx, id)
	if err != nil {
		return entities.Email{}, err
	}
	if raw == nil {
		return entities.Email{}, ErrEmailNotFound
	}
	email, err := normalize.Email(raw)
	if err != nil {
		u.log.Warn("stored email failed normalization", zap.String("id", id), zap.Error(err))
		return entities.Email{}, ErrEmailNotFound
	}
	return email, nil
}

func (u *EmailUseCase) Create(ctx context.Context, payload map[string]any) (entities.Email, error) {
	clean := normalize.SanitizePayload(payload)
	if normalize.ResolveRef(clean, "engagementId") == "" {
		return entities.Email{}, ErrEmailEngagementRequired
	}
	if subject, _ := clean["subject"].(string); strings.TrimSpace(subject) == "" {
		return entities.Email{}, ErrEmailSubjectRequired
	}

	clean["receivedAt"] = time.Now().UTC().Format(time.RFC3339)

	raw, err := u.emails.Create(ctx, uuid.NewString(), clean)
	if err != nil {
		return entities.Email{}, err
	}
	return normalize.Email(raw)
}
