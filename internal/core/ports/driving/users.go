package driving

import (
	"context"

	"github.com/caopengau/aiready-skills/internal/core/domain"
)

// UserService manages customer accounts.
//
// Lookups signal "no such user" with a nil pointer and a nil error.
// Errors are reserved for validation and infrastructure failures.
type UserService interface {
	// List returns all users.
	List(ctx context.Context) ([]domain.User, error)

	// Get retrieves a user by ID. Returns (nil, nil) when absent.
	Get(ctx context.Context, id int) (*domain.User, error)

	// Create validates and stores a new user, assigning its ID.
	// Fails with domain.ErrInvalidEmail when the email is empty or has
	// no "@".
	Create(ctx context.Context, name, email string) (*domain.User, error)

	// Update modifies an existing user. An empty name or email leaves
	// that field unchanged. Returns (nil, nil) when absent.
	Update(ctx context.Context, id int, name, email string) (*domain.User, error)

	// Delete removes a user by ID, reporting whether it existed.
	Delete(ctx context.Context, id int) (bool, error)
}
