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
	"golang.org/x/sync/errgroup"
)

var (
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrInvalidCustomerID    = errors.New("invalid customer id")
	ErrCustomerNameRequired = errors.New("customer name is required")
)

// ICustomerUseCase exposes customer operations. Every read joins the derived
// engagement count and returns fully normalized view models; raw records
// never leave this layer.

type ICustomerUseCase interface {
	List(ctx context.Context, filters map[string]string) ([]entities.Customer, error)
	Search(ctx context.Context, text string, filters map[string]string) ([]entities.Customer, error)
	AutocompleteNames(ctx context.Context, prefix string) ([]string, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Create(ctx context.Context, payload map[string]any) (entities.Customer, error)
	Update(ctx context.Context, id string, payload map[string]any) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	customers   interfaces.ICustomerRepository
	engagements interfaces.IEngagementRepository
	log         *zap.Logger
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(customers interfaces.ICustomerRepository, engagements interfaces.IEngagementRepository, log *zap.Logger) *CustomerUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CustomerUseCase{customers: customers, engagements: engagements, log: log}
}

func (u *CustomerUseCase) List(ctx context.Context, filters map[string]string) ([]entities.Customer, error) {
	return u.Search(ctx, "", filters)
}

func (u *CustomerUseCase) Search(ctx context.Context, text string, filters map[string]string) ([]entities.Customer, error) {
	customerStore, engagementStore, err := u.loadStores(ctx)
	if err != nil {
		return nil, err
	}

	counts := engagementCounts(engagementStore.Items())
	matched := query.Filter(customerStore.Items(), query.Criteria{Text: text, Structured: filters}, viewmodel.CustomerFields())
	for i := range matched {
		matched[i].EngagementCount = counts[matched[i].ID]
	}
	return matched, nil
}

func (u *CustomerUseCase) AutocompleteNames(ctx context.Context, prefix string) ([]string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []string{}, nil
	}

	raws, err := u.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	store := viewmodel.NewCustomerStore(u.log)
	store.Load(raws)

	lower := strings.ToLower(prefix)
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, c := range store.Items() {
		if !strings.HasPrefix(strings.ToLower(c.Name), lower) {
			continue
		}
		if _, dup := seen[c.Name]; dup {
			continue
		}
		seen[c.Name] = struct{}{}
		names = append(names, c.Name)
	}
	return names, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	raw, err := u.customers.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if raw == nil {
		return entities.Customer{}, ErrCustomerNotFound
	}
	customer, err := normalize.Customer(raw)
	if err != nil {
		// a stored record without a resolvable identifier is treated the
		// same as an absent one
		u.log.Warn("stored customer failed normalization", zap.String("id", id), zap.Error(err))
		return entities.Customer{}, ErrCustomerNotFound
	}

	engagements, err := u.engagements.List(ctx)
	if err != nil {
		return entities.Customer{}, err
	}
	store := viewmodel.NewEngagementStore(u.log)
	store.Load(engagements)
	customer.EngagementCount = engagementCounts(store.Items())[customer.ID]
	return customer, nil
}

func (u *CustomerUseCase) Create(ctx context.Context, payload map[string]any) (entities.Customer, error) {
	clean := normalize.SanitizePayload(payload)
	if name, _ := clean["name"].(string); strings.TrimSpace(name) == "" {
		return entities.Customer{}, ErrCustomerNameRequired
	}

	now := time.Now().UTC().Format(time.RFC3339)
	clean["createdAt"] = now
	clean["updatedAt"] = now

	raw, err := u.customers.Create(ctx, uuid.NewString(), clean)
	if err != nil {
		return entities.Customer{}, err
	}
	return normalize.Customer(raw)
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, payload map[string]any) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	clean := normalize.SanitizePayload(payload)
	delete(clean, "id")
	delete(clean, "_id")
	clean["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	raw, err := u.customers.Update(ctx, id, clean)
	if err != nil {
		return entities.Customer{}, err
	}
	if raw == nil {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return normalize.Customer(raw)
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCustomerID
	}

	deleted, err := u.customers.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCustomerNotFound
	}
	return nil
}

// loadStores fetches customers and engagements concurrently and joins them
// before any derived count is computed. If either fetch fails the whole load
// fails; a partially populated view is never returned.
func (u *CustomerUseCase) loadStores(ctx context.Context) (*viewmodel.Store[entities.Customer], *viewmodel.Store[entities.Engagement], error) {
	var customerRaws, engagementRaws []map[string]any

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customerRaws, err = u.customers.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		engagementRaws, err = u.engagements.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	customerStore := viewmodel.NewCustomerStore(u.log)
	customerStore.Load(customerRaws)
	engagementStore := viewmodel.NewEngagementStore(u.log)
	engagementStore.Load(engagementRaws)
	return customerStore, engagementStore, nil
}

// engagementCounts tallies engagements per customer id. Orphans (empty or
// unknown customer reference) never contribute to any customer's count.
func engagementCounts(engagements []entities.Engagement) map[string]int {
	counts := make(map[string]int)
	for _, e := range engagements {
		if e.CustomerID == "" {
			continue
		}
		counts[e.CustomerID]++
	}
	return counts
}
