package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"engagetrack/internal/domain/entities"
	"engagetrack/internal/normalize"
	"engagetrack/internal/query"
	"engagetrack/internal/usecase/interfaces"
	"engagetrack/internal/viewmodel"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEngagementNotFound         = errors.New("engagement not found")
	ErrInvalidEngagementID        = errors.New("invalid engagement id")
	ErrEngagementNameRequired     = errors.New("engagement name is required")
	ErrEngagementCustomerRequired = errors.New("engagement customer id is required")
)

// IEngagementUseCase exposes engagement operations over normalized view
// models.

type IEngagementUseCase interface {
	List(ctx context.Context, customerID string) ([]entities.Engagement, error)
	Search(ctx context.Context, text string) ([]entities.Engagement, error)
	GetByID(ctx context.Context, id string) (entities.Engagement, error)
	Create(ctx context.Context, payload map[string]any) (entities.Engagement, error)
	Update(ctx context.Context, id string, payload map[string]any) (entities.Engagement, error)
	Delete(ctx context.Context, id string) error
}

type EngagementUseCase struct {
	repo interfaces.IEngagementRepository
	log  *zap.Logger
}

var _ IEngagementUseCase = (*EngagementUseCase)(nil)

func NewEngagementUseCase(repo interfaces.IEngagementRepository, log *zap.Logger) *EngagementUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &EngagementUseCase{repo: repo, log: log}
}

func (u *EngagementUseCase) List(ctx context.Context, customerID string) ([]entities.Engagement, error) {
	store, err := u.loadStore(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(customerID) == "" {
		return store.Items(), nil
	}
	// filtering happens after normalization so legacy customerIdObj shapes
	// resolve the same way everywhere
	return query.Filter(store.Items(), query.Criteria{
		Structured: map[string]string{"customerId": strings.TrimSpace(customerID)},
	}, viewmodel.EngagementFields()), nil
}

func (u *EngagementUseCase) Search(ctx context.Context, text string) ([]entities.Engagement, error) {
	store, err := u.loadStore(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(store.Items(), query.Criteria{Text: text}, viewmodel.EngagementFields()), nil
}

func (u *EngagementUseCase) GetByID(ctx context.Context, id string) (entities.Engagement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Engagement{}, ErrInvalidEngagementID
	}

	raw, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Engagement{}, err
	}
	if raw == nil {
		return entities.Engagement{}, ErrEngagementNotFound
	}
	engagement, err := normalize.Engagement(raw)
	if err != nil {
		u.log.Warn("stored engagement failed normalization", zap.String("id", id), zap.Error(err))
		return entities.Engagement{}, ErrEngagementNotFound
	}
	return engagement, nil
}

func (u *EngagementUseCase) Create(ctx context.Context, payload map[string]any) (entities.Engagement, error) {
	clean := normalize.SanitizePayload(payload)
	if normalize.ResolveRef(clean, "customerId", "customerIdObj") == "" {
		return entities.Engagement{}, ErrEngagementCustomerRequired
	}
	if name, _ := clean["name"].(string); strings.TrimSpace(name) == "" {
		return entities.Engagement{}, ErrEngagementNameRequired
	}

	now := time.Now().UTC().Format(time.RFC3339)
	clean["createdAt"] = now
	clean["updatedAt"] = now

	raw, err := u.repo.Create(ctx, uuid.NewString(), clean)
	if err != nil {
		return entities.Engagement{}, err
	}
	return normalize.Engagement(raw)
}

func (u *EngagementUseCase) Update(ctx context.Context, id string, payload map[string]any) (entities.Engagement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Engagement{}, ErrInvalidEngagementID
	}

	clean := normalize.SanitizePayload(payload)
	delete(clean, "id")
	delete(clean, "_id")
	delete(clean, "engagementId")
	clean["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	raw, err := u.repo.Update(ctx, id, clean)
	if err != nil {
		return entities.Engagement{}, err
	}
	if raw == nil {
		return entities.Engagement{}, ErrEngagementNotFound
	}
	return normalize.Engagement(raw)
}

func (u *EngagementUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEngagementID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEngagementNotFound
	}
	return nil
}

func (u *EngagementUseCase) loadStore(ctx context.Context) (*viewmodel.Store[entities.Engagement], error) {
	raws, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	store := viewmodel.NewEngagementStore(u.log)
	store.Load(raws)
	return store, nil
}
