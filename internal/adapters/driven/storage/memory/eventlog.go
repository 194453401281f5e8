package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/caopengau/aiready-skills/internal/core/domain"
	"github.com/caopengau/aiready-skills/internal/core/ports/driven"
)

// Ensure EventLog implements the interface.
var _ driven.EventLog = (*EventLog)(nil)

// DefaultEventCapacity bounds the in-memory event log when no
// capacity is given.
const DefaultEventCapacity = 256

// EventLog is an in-memory implementation of driven.EventLog. It
// retains the most recent events up to a fixed capacity, dropping the
// oldest once full.
type EventLog struct {
	mu       sync.RWMutex
	events   []domain.Event
	capacity int
}

// NewEventLog creates an event log retaining up to capacity events.
// A capacity of zero or less falls back to DefaultEventCapacity.
func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = DefaultEventCapacity
	}
	return &EventLog{capacity: capacity}
}

// Append stores an event, assigning its ID and timestamp when the
// caller left them zero.
func (l *EventLog) Append(_ context.Context, event domain.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	l.events = append(l.events, event)
	if len(l.events) > l.capacity {
		l.events = l.events[len(l.events)-l.capacity:]
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (l *EventLog) Recent(_ context.Context, limit int) ([]domain.Event, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	count := len(l.events)
	if limit <= 0 || limit > count {
		limit = count
	}
	result := make([]domain.Event, 0, limit)
	for i := count - 1; i >= count-limit; i-- {
		result = append(result, l.events[i])
	}
	return result, nil
}
