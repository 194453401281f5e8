package driven

import (
	"context"

	"github.com/caopengau/aiready-skills/internal/core/domain"
)

// EventLog records completed operations for the activity views.
type EventLog interface {
	// Append stores an event. Implementations assign the event ID and
	// timestamp when the caller leaves them zero.
	Append(ctx context.Context, event domain.Event) error

	// Recent returns up to limit events, newest first.
	// A limit of zero or less returns every retained event.
	Recent(ctx context.Context, limit int) ([]domain.Event, error)
}
