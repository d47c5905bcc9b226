package usecase

import (
	"context"
	"fmt"
	"sort"

	"engagetrack/internal/aggregate"
	"engagetrack/internal/domain/entities"
	"engagetrack/internal/normalize"
	"engagetrack/internal/usecase/interfaces"
	"engagetrack/internal/viewmodel"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// unknownCustomerName is rendered for engagements whose customer reference
// does not resolve against the customer collection. Orphans stay visible so
// dashboard totals match the engagement list.
const unknownCustomerName = "Unknown Customer"

// KPIs is the headline metric block on the dashboard home.
type KPIs struct {
	TotalCustomers     int     `json:"total_customers"`
	ActiveEngagements  int     `json:"active_engagements"`
	TotalContractValue float64 `json:"total_contract_value"`
	LatestExpiry       string  `json:"latest_expiry"`
}

type AtRiskEngagement struct {
	EngagementID string `json:"engagement_id"`
	Name         string `json:"name"`
	CustomerName string `json:"customer_name"`
}

type Activity struct {
	Type      string `json:"type"`
	Desc      string `json:"desc"`
	Timestamp string `json:"timestamp"`
}

// IDashboardUseCase computes the dashboard views over a per-request
// view-model store; nothing is cached between calls.

type IDashboardUseCase interface {
	KPIs(ctx context.Context) (KPIs, error)
	StatusDistribution(ctx context.Context) (entities.StatusCounts, error)
	AtRiskEngagements(ctx context.Context) ([]AtRiskEngagement, error)
	RecentActivity(ctx context.Context) ([]Activity, error)
}

type DashboardUseCase struct {
	customers   interfaces.ICustomerRepository
	engagements interfaces.IEngagementRepository
	log         *zap.Logger
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(customers interfaces.ICustomerRepository, engagements interfaces.IEngagementRepository, log *zap.Logger) *DashboardUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardUseCase{customers: customers, engagements: engagements, log: log}
}

func (u *DashboardUseCase) KPIs(ctx context.Context) (KPIs, error) {
	customerStore, engagementStore, err := u.loadStores(ctx)
	if err != nil {
		return KPIs{}, err
	}

	summary := aggregate.Summarize(engagementStore.Items())
	k := KPIs{
		TotalCustomers:     customerStore.Len(),
		ActiveEngagements:  summary.ActiveCount,
		TotalContractValue: summary.TotalValue,
		LatestExpiry:       "N/A",
	}
	if summary.HasExpiry() {
		k.LatestExpiry = summary.LatestExpiry.Format("2006-01-02")
	}
	return k, nil
}

func (u *DashboardUseCase) StatusDistribution(ctx context.Context) (entities.StatusCounts, error) {
	raws, err := u.engagements.List(ctx)
	if err != nil {
		return entities.StatusCounts{}, err
	}
	store := viewmodel.NewEngagementStore(u.log)
	store.Load(raws)
	return aggregate.Summarize(store.Items()).StatusCounts, nil
}

func (u *DashboardUseCase) AtRiskEngagements(ctx context.Context) ([]AtRiskEngagement, error) {
	customerStore, engagementStore, err := u.loadStores(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]AtRiskEngagement, 0)
	for _, e := range engagementStore.Items() {
		if e.RYGStatus != entities.RYGRed {
			continue
		}
		name := unknownCustomerName
		if c, ok := customerStore.Get(e.CustomerID); ok {
			name = c.Name
		}
		out = append(out, AtRiskEngagement{EngagementID: e.ID, Name: e.Name, CustomerName: name})
	}
	return out, nil
}

func (u *DashboardUseCase) RecentActivity(ctx context.Context) ([]Activity, error) {
	raws, err := u.engagements.List(ctx)
	if err != nil {
		return nil, err
	}
	store := viewmodel.NewEngagementStore(u.log)
	store.Load(raws)

	type stamped struct {
		activity Activity
		at       int64
	}
	items := make([]stamped, 0)
	for _, e := range store.Items() {
		t, ok := normalize.ParseDate(e.UpdatedAt)
		if !ok {
			continue
		}
		items = append(items, stamped{
			activity: Activity{
				Type:      "engagement_update",
				Desc:      fmt.Sprintf("Engagement %q updated", e.Name),
				Timestamp: e.UpdatedAt,
			},
			at: t.Unix(),
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].at > items[j].at })

	const limit = 10
	out := make([]Activity, 0, limit)
	for i, it := range items {
		if i == limit {
			break
		}
		out = append(out, it.activity)
	}
	return out, nil
}

func (u *DashboardUseCase) loadStores(ctx context.Context) (*viewmodel.Store[entities.Customer], *viewmodel.Store[entities.Engagement], error) {
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
