package services

import (
	"context"

	"github.com/caopengau/aiready-skills/internal/core/domain"
	"github.com/caopengau/aiready-skills/internal/core/ports/driven"
	"github.com/caopengau/aiready-skills/internal/core/ports/driving"
)

// Ensure ActivityService implements the interface.
var _ driving.ActivityService = (*ActivityService)(nil)

// ActivityService records completed operations in an event log.
// The log is optional; without one, Record is a no-op and Recent
// reports nothing.
type ActivityService struct {
	log driven.EventLog
}

// NewActivityService creates a new activity service over the given log.
func NewActivityService(log driven.EventLog) *ActivityService {
	return &ActivityService{log: log}
}

// Record appends an event to the activity log.
func (s *ActivityService) Record(ctx context.Context, action, entity, detail string) error {
	if s.log == nil {
		return nil
	}
	return s.log.Append(ctx, domain.Event{
		Action: action,
		Entity: entity,
		Detail: detail,
	})
}

// Recent returns up to limit events, newest first.
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]domain.Event, error) {
	if s.log == nil {
		return []domain.Event{}, nil
	}
	return s.log.Recent(ctx, limit)
}
