package domain

import (
	"fmt"
	"time"
)

// Event records a completed operation in the activity log.
type Event struct {
	// ID is a UUID assigned when the event is recorded.
	ID string

	// Action names the operation, e.g. "user.create" or "order.cancel".
	Action string

	// Entity identifies the affected record, e.g. "user 3".
	Entity string

	// Detail is an optional human-readable elaboration.
	Detail string

	// OccurredAt is when the event was recorded.
	OccurredAt time.Time
}

// String returns a compact single-line rendering for logs and lists.
func (e Event) String() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s: %s", e.Action, e.Entity, e.Detail)
	}
	return fmt.Sprintf("%s %s", e.Action, e.Entity)
}
