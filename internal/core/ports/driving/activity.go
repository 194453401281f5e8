package driving

import (
	"context"

	"github.com/caopengau/aiready-skills/internal/core/domain"
)

// ActivityService records and reports what the application has done.
type ActivityService interface {
	// Record appends an event to the activity log.
	Record(ctx context.Context, action, entity, detail string) error

	// Recent returns up to limit events, newest first. A limit of zero
	// or less returns every retained event.
	Recent(ctx context.Context, limit int) ([]domain.Event, error)
}
