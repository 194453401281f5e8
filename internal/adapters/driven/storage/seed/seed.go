// Package seed provides the fixture dataset and the store that serves
// it. The store rebuilds the dataset on every call and quietly
// discards writes, so no mutation ever survives the call that made
// it. It is the default backend; the memory and sqlite stores exist
// for callers who want mutations to stick.
package seed

import "github.com/caopengau/aiready-skills/internal/core/domain"

// Users returns the seeded demo users, rebuilt on every call.
func Users() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com"},
		{ID: 2, Name: "Bob", Email: "bob@example.com"},
	}
}

// Orders returns the seeded demo orders, rebuilt on every call.
func Orders() []domain.Order {
	return []domain.Order{
		{ID: 1, UserID: 1, Product: "Laptop", Amount: 999.99, Status: domain.OrderStatusPending},
		{ID: 2, UserID: 2, Product: "Phone", Amount: 699.99, Status: domain.OrderStatusPending},
	}
}
