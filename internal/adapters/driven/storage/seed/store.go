package seed

import (
	"context"

	"github.com/caopengau/aiready-skills/internal/core/domain"
	"github.com/caopengau/aiready-skills/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var (
	_ driven.RecordStore[domain.User]  = (*Store[domain.User])(nil)
	_ driven.RecordStore[domain.Order] = (*Store[domain.Order])(nil)
)

// Store is the fixture-backed implementation of driven.RecordStore.
// Reads are served from a dataset rebuilt by the seed function on
// every call; writes are accepted and discarded.
type Store[R domain.Record[R]] struct {
	seed func() []R
}

// NewStore creates a fixture store over the given seed function.
func NewStore[R domain.Record[R]](seed func() []R) *Store[R] {
	return &Store[R]{seed: seed}
}

// NewUserStore creates the fixture store serving the demo users.
func NewUserStore() *Store[domain.User] {
	return NewStore(Users)
}

// NewOrderStore creates the fixture store serving the demo orders.
func NewOrderStore() *Store[domain.Order] {
	return NewStore(Orders)
}

// List returns a fresh copy of the seeded records.
func (s *Store[R]) List(_ context.Context) ([]R, error) {
	return s.seed(), nil
}

// Get retrieves a seeded record by key.
func (s *Store[R]) Get(_ context.Context, id int) (*R, error) {
	for _, record := range s.seed() {
		if record.Key() == id {
			return &record, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Put accepts the record and discards it.
func (s *Store[R]) Put(_ context.Context, _ R) error {
	return nil
}

// Delete accepts the removal and discards it.
func (s *Store[R]) Delete(_ context.Context, _ int) error {
	return nil
}
