package driving

import (
	"context"

	"github.com/caopengau/aiready-skills/internal/core/domain"
)

// OrderService manages orders.
//
// Lookups signal "no such order" with a nil pointer and a nil error.
// Errors are reserved for validation and infrastructure failures.
type OrderService interface {
	// List returns all orders.
	List(ctx context.Context) ([]domain.Order, error)

	// Get retrieves an order by ID. Returns (nil, nil) when absent.
	Get(ctx context.Context, id int) (*domain.Order, error)

	// Create validates and stores a new pending order, assigning its
	// ID. Fails with domain.ErrInvalidAmount when amount is not
	// positive. The user reference is not checked.
	Create(ctx context.Context, userID int, product string, amount float64) (*domain.Order, error)

	// Cancel marks an order cancelled, reporting whether it existed.
	Cancel(ctx context.Context, id int) (bool, error)

	// Quote prices an order with the configured currency and tax rate.
	// Returns (nil, nil) when the order is absent.
	Quote(ctx context.Context, id int) (*domain.Quote, error)
}
