// Package viewmodel holds the per-page in-memory collection of normalized
// entities. A Store is owned by a single request/page lifetime and is not
// shared across goroutines; every entity it contains has passed through the
// normalize package exactly once.
package viewmodel

import (
	"engagetrack/internal/domain/entities"
	"engagetrack/internal/normalize"

	"go.uber.org/zap"
)

// Store keeps normalized entities in insertion order, keyed by the resolved
// canonical identifier.
type Store[T any] struct {
	normalizeFn func(map[string]any) (T, error)
	identify    func(T) string
	log         *zap.Logger
	items       []T
}

func NewStore[T any](normalizeFn func(map[string]any) (T, error), identify func(T) string, log *zap.Logger) *Store[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store[T]{normalizeFn: normalizeFn, identify: identify, log: log}
}

func NewCustomerStore(log *zap.Logger) *Store[entities.Customer] {
	return NewStore(normalize.Customer, func(c entities.Customer) string { return c.ID }, log)
}

func NewEngagementStore(log *zap.Logger) *Store[entities.Engagement] {
	return NewStore(normalize.Engagement, func(e entities.Engagement) string { return e.ID }, log)
}

func NewActionItemStore(log *zap.Logger) *Store[entities.ActionItem] {
	return NewStore(normalize.ActionItem, func(a entities.ActionItem) string { return a.ID }, log)
}

func NewEmailStore(log *zap.Logger) *Store[entities.Email] {
	return NewStore(normalize.Email, func(e entities.Email) string { return e.ID }, log)
}

// Load normalizes each raw record and replaces the store's contents. Records
// without a resolvable identifier are skipped with a warning, never stored
// and never given a synthetic id.
func (s *Store[T]) Load(raws []map[string]any) {
	items := make([]T, 0, len(raws))
	for _, raw := range raws {
		item, err := s.normalizeFn(raw)
		if err != nil {
			s.log.Warn("skipping record that failed normalization", zap.Error(err))
			continue
		}
		items = append(items, item)
	}
	s.items = items
}

// Add normalizes and appends one record.
func (s *Store[T]) Add(raw map[string]any) (T, error) {
	item, err := s.normalizeFn(raw)
	if err != nil {
		var zero T
		return zero, err
	}
	s.items = append(s.items, item)
	return item, nil
}

// Replace swaps the entity whose resolved id matches. A miss or a
// non-normalizable record is logged and ignored rather than surfaced; the
// confirmed server state simply did not land in this store.
func (s *Store[T]) Replace(id string, raw map[string]any) {
	item, err := s.normalizeFn(raw)
	if err != nil {
		s.log.Warn("replace discarded record that failed normalization", zap.String("id", id), zap.Error(err))
		return
	}
	for i := range s.items {
		if s.identify(s.items[i]) == id {
			s.items[i] = item
			return
		}
	}
	s.log.Warn("replace target not found in store", zap.String("id", id))
}

// Remove drops the entity whose resolved id matches.
func (s *Store[T]) Remove(id string) {
	for i := range s.items {
		if s.identify(s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Get returns the entity with the given id.
func (s *Store[T]) Get(id string) (T, bool) {
	for i := range s.items {
		if s.identify(s.items[i]) == id {
			return s.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Items returns a copy of the collection in insertion order.
func (s *Store[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T]) Len() int {
	return len(s.items)
}
