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
	ErrActionItemNotFound            = errors.New("action item not found")
	ErrInvalidActionItemID           = errors.New("invalid action item id")
	ErrActionItemDescriptionRequired = errors.New("action item description is required")
	ErrActionItemEngagementRequired  = errors.New("action item engagement id is required")
)

// externalSource marks items pushed in by outside systems rather than users.
const externalSource = "external_system"

// IActionItemUseCase exposes the follow-up tasks tracked per engagement.

type IActionItemUseCase interface {
	ListByEngagement(ctx context.Context, engagementID string) ([]entities.ActionItem, error)
	Create(ctx context.Context, engagementID string, payload map[string]any) (entities.ActionItem, error)
	CreateExternal(ctx context.Context, payload map[string]any) (entities.ActionItem, error)
	Update(ctx context.Context, id string, payload map[string]any) (entities.ActionItem, error)
	Delete(ctx context.Context, id string) error
}

type ActionItemUseCase struct {
	items       interfaces.IActionItemRepository
	engagements interfaces.IEngagementRepository
	log         *zap.Logger
}

var _ IActionItemUseCase = (*ActionItemUseCase)(nil)

func NewActionItemUseCase(items interfaces.IActionItemRepository, engagements interfaces.IEngagementRepository, log *zap.Logger) *ActionItemUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ActionItemUseCase{items: items, engagements: engagements, log: log}
}

func (u *ActionItemUseCase) ListByEngagement(ctx context.Context, engagementID string) ([]entities.ActionItem, error) {
	engagementID = strings.TrimSpace(engagementID)
	if engagementID == "" {
		return nil, ErrActionItemEngagementRequired
	}

	raws, err := u.items.List(ctx)
	if err != nil {
		return nil, err
	}
	store := viewmodel.NewActionItemStore(u.log)
	store.Load(raws)

	// filtering happens after normalization so wrapped engagement references
	// resolve the same way everywhere
	return query.Filter(store.Items(), query.Criteria{
		Structured: map[string]string{"engagementId": engagementID},
	}, viewmodel.ActionItemFields()), nil
}

func (u *ActionItemUseCase) Create(ctx context.Context, engagementID string, payload map[string]any) (entities.ActionItem, error) {
	engagementID = strings.TrimSpace(engagementID)
	if engagementID == "" {
		return entities.ActionItem{}, ErrActionItemEngagementRequired
	}

	raw, err := u.engagements.GetByID(ctx, engagementID)
	if err != nil {
		return entities.ActionItem{}, err
	}
	if raw == nil {
		return entities.ActionItem{}, ErrEngagementNotFound
	}

	clean := normalize.SanitizePayload(payload)
	clean["engagementId"] = engagementID
	return u.create(ctx, clean)
}

// CreateExternal ingests an item pushed by an outside system. The engagement
// reference comes from the payload and is stamped with the external source
// marker; unlike Create the engagement is not required to exist yet, since
// external pushes may race the engagement import.
func (u *ActionItemUseCase) CreateExternal(ctx context.Context, payload map[string]any) (entities.ActionItem, error) {
	clean := normalize.SanitizePayload(payload)
	if normalize.ResolveRef(clean, "engagementId") == "" {
		return entities.ActionItem{}, ErrActionItemEngagementRequired
	}
	clean["source"] = externalSource
	return u.create(ctx, clean)
}

func (u *ActionItemUseCase) create(ctx context.Context, clean map[string]any) (entities.ActionItem, error) {
	if desc, _ := clean["description"].(string); strings.TrimSpace(desc) == "" {
		return entities.ActionItem{}, ErrActionItemDescriptionRequired
	}
	if _, ok := clean["status"]; !ok {
		clean["status"] = entities.ActionItemStatusOpen
	}

	now := time.Now().UTC().Format(time.RFC3339)
	clean["createdAt"] = now
	clean["updatedAt"] = now

	raw, err := u.items.Create(ctx, uuid.NewString(), clean)
	if err != nil {
		return entities.ActionItem{}, err
	}
	return normalize.ActionItem(raw)
}

func (u *ActionItemUseCase) Update(ctx context.Context, id string, payload map[string]any) (entities.ActionItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ActionItem{}, ErrInvalidActionItemID
	}

	clean := normalize.SanitizePayload(payload)
	delete(clean, "id")
	delete(clean, "_id")
	clean["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	raw, err := u.items.Update(ctx, id, clean)
	if err != nil {
		return entities.ActionItem{}, err
	}
	if raw == nil {
		return entities.ActionItem{}, ErrActionItemNotFound
	}
	return normalize.ActionItem(raw)
}

func (u *ActionItemUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidActionItemID
	}

	deleted, err := u.items.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrActionItemNotFound
	}
	return nil
}
