package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/caopengau/aiready-skills/internal/core/domain"
	"github.com/caopengau/aiready-skills/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var (
	_ driven.RecordStore[domain.User]  = (*RecordStore[domain.User])(nil)
	_ driven.RecordStore[domain.Order] = (*RecordStore[domain.Order])(nil)
)

// RecordStore is an in-memory implementation of driven.RecordStore.
// Records live for the life of the process, so mutations are visible
// to later calls within the same run.
type RecordStore[R domain.Record[R]] struct {
	mu      sync.RWMutex
	records map[int]R
}

// NewRecordStore creates a new empty in-memory record store.
func NewRecordStore[R domain.Record[R]]() *RecordStore[R] {
	return &RecordStore[R]{
		records: make(map[int]R),
	}
}

// NewSeededRecordStore creates an in-memory record store preloaded
// with the given records.
func NewSeededRecordStore[R domain.Record[R]](records []R) *RecordStore[R] {
	store := NewRecordStore[R]()
	for _, record := range records {
		store.records[record.Key()] = record
	}
	return store
}

// List returns all records ordered by key.
func (s *RecordStore[R]) List(_ context.Context) ([]R, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]R, 0, len(s.records))
	for _, record := range s.records {
		result = append(result, record)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Key() < result[j].Key()
	})
	return result, nil
}

// Get retrieves a record by key.
func (s *RecordStore[R]) Get(_ context.Context, id int) (*R, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// Put stores or updates a record under its key.
func (s *RecordStore[R]) Put(_ context.Context, record R) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Key()] = record
	return nil
}

// Delete removes a record by key.
func (s *RecordStore[R]) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}
