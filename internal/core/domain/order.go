package domain

import "fmt"

// MaxOrdersPerUser caps how many orders a single user may hold.
// The limit is advisory and not enforced by any store.
const MaxOrdersPerUser = 100

// OrderStatus identifies the lifecycle state of an order.
type OrderStatus string

// Recognised order statuses.
const (
	// OrderStatusPending is the initial state of every new order.
	OrderStatusPending OrderStatus = "pending"

	// OrderStatusCancelled marks an order that has been cancelled.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid returns true if the status is recognised.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s OrderStatus) String() string {
	return string(s)
}

// Order represents a purchase made by a user.
type Order struct {
	// ID is the unique identifier for the order.
	ID int

	// UserID references the purchasing User. Referential integrity is
	// not enforced; an order may point at a user that no longer exists.
	UserID int

	// Product is the name of the purchased item.
	Product string

	// Amount is the order total. Creation requires it to be positive.
	Amount float64

	// Status is the lifecycle state. New orders start as
	// OrderStatusPending.
	Status OrderStatus
}

// Key returns the order's unique identifier.
func (o Order) Key() int {
	return o.ID
}

// WithKey returns a copy of the order carrying the given identifier.
func (o Order) WithKey(id int) Order {
	o.ID = id
	return o
}

// Validate checks the creation rule for orders: the amount must be
// strictly positive.
func (o Order) Validate() error {
	if o.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// String returns a human-readable rendering,
// e.g. "Order(1, Laptop, $999.99, pending)".
func (o Order) String() string {
	return fmt.Sprintf("Order(%d, %s, %s, %s)", o.ID, o.Product, FormatCurrency(o.Amount, DefaultCurrency), o.Status)
}
