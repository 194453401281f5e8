package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/caopengau/aiready-skills/internal/core/domain"
	"github.com/caopengau/aiready-skills/internal/core/ports/driven"
)

// userStore implements driven.RecordStore[domain.User].
type userStore struct {
	store *Store
}

var _ driven.RecordStore[domain.User] = (*userStore)(nil)

// List returns all users ordered by key.
func (s *userStore) List(ctx context.Context) ([]domain.User, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, email FROM users ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	var users []domain.User //nolint:prealloc // size unknown from query
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}

	return users, nil
}

// Get retrieves a user by key.
func (s *userStore) Get(ctx context.Context, id int) (*domain.User, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, email FROM users WHERE id = ?
	`, id)

	var user domain.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	return &user, nil
}

// Put stores or updates a user under its key.
func (s *userStore) Put(ctx context.Context, user domain.User) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email
	`, user.ID, user.Name, user.Email)

	if err != nil {
		return fmt.Errorf("saving user: %w", err)
	}
	return nil
}

// Delete removes a user by key.
func (s *userStore) Delete(ctx context.Context, id int) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}
