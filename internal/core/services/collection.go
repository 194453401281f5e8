package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/caopengau/aiready-skills/internal/core/domain"
	"github.com/caopengau/aiready-skills/internal/core/ports/driven"
)

// Collection implements the keyed-record CRUD pattern shared by every
// entity kind. The user and order services each hold one instance for
// their own record type; whether writes stick is decided by the
// injected store, not here.
//
// Absent records surface as (nil, nil) from lookups. The store-level
// domain.ErrNotFound never escapes this type.
type Collection[R domain.Record[R]] struct {
	store driven.RecordStore[R]
}

// NewCollection creates a collection over the given store.
func NewCollection[R domain.Record[R]](store driven.RecordStore[R]) *Collection[R] {
	return &Collection[R]{store: store}
}

// List returns all records ordered by key.
func (c *Collection[R]) List(ctx context.Context) ([]R, error) {
	if c.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return c.store.List(ctx)
}

// Get retrieves a record by key. Returns (nil, nil) when absent.
func (c *Collection[R]) Get(ctx context.Context, id int) (*R, error) {
	if c.store == nil {
		return nil, domain.ErrNotImplemented
	}
	record, err := c.store.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Create validates the record, assigns the next key and stores it.
// The key is the current record count plus one; with the seed store
// that count never moves, so every create yields the same key.
func (c *Collection[R]) Create(ctx context.Context, record R) (*R, error) {
	if c.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	existing, err := c.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	created := record.WithKey(len(existing) + 1)
	if err := c.store.Put(ctx, created); err != nil {
		return nil, fmt.Errorf("storing record: %w", err)
	}
	return &created, nil
}

// Mutate applies fn to the record with the given key and stores the
// result. The creation rule is not re-checked. Returns (nil, nil)
// when absent.
func (c *Collection[R]) Mutate(ctx context.Context, id int, fn func(R) R) (*R, error) {
	record, err := c.Get(ctx, id)
	if err != nil || record == nil {
		return nil, err
	}
	updated := fn(*record)
	if err := c.store.Put(ctx, updated); err != nil {
		return nil, fmt.Errorf("storing record: %w", err)
	}
	return &updated, nil
}

// Delete removes the record with the given key, reporting whether it
// existed.
func (c *Collection[R]) Delete(ctx context.Context, id int) (bool, error) {
	record, err := c.Get(ctx, id)
	if err != nil || record == nil {
		return false, err
	}
	if err := c.store.Delete(ctx, id); err != nil {
		return false, fmt.Errorf("deleting record: %w", err)
	}
	return true, nil
}
