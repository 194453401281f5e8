package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/caopengau/aiready-skills/internal/core/domain"
	"github.com/caopengau/aiready-skills/internal/core/ports/driven"
)

// eventLog implements driven.EventLog.
type eventLog struct {
	store *Store
}

var _ driven.EventLog = (*eventLog)(nil)

// Append stores an event, assigning its ID and timestamp when the
// caller left them zero.
func (l *eventLog) Append(ctx context.Context, event domain.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	_, err := l.store.db.ExecContext(ctx, `
		INSERT INTO events (id, action, entity, detail, occurred_at)
		VALUES (?, ?, ?, ?, ?)
	`, event.ID, event.Action, event.Entity, event.Detail, event.OccurredAt)

	if err != nil {
		return fmt.Errorf("appending event: %w", err)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (l *eventLog) Recent(ctx context.Context, limit int) ([]domain.Event, error) {
	query := `
		SELECT id, action, entity, detail, occurred_at
		FROM events ORDER BY occurred_at DESC, rowid DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := l.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event //nolint:prealloc // size unknown from query
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(&event.ID, &event.Action, &event.Entity, &event.Detail, &event.OccurredAt); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}
