// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/caopengau/aiready-skills/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewUsers lists the registered users.
	ViewUsers
	// ViewOrders lists the placed orders.
	ViewOrders
	// ViewActivity shows the recent activity log.
	ViewActivity
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewUsers:
		return "users"
	case ViewOrders:
		return "orders"
	case ViewActivity:
		return "activity"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// UsersLoaded carries the list of users from the service.
type UsersLoaded struct {
	Users []domain.User
	Err   error
}

// UserRemoved signals a user was deleted.
type UserRemoved struct {
	ID      int
	Existed bool
	Err     error
}

// OrdersLoaded carries the list of orders from the service.
type OrdersLoaded struct {
	Orders []domain.Order
	Err    error
}

// OrderCancelled signals an order was cancelled.
type OrderCancelled struct {
	ID      int
	Existed bool
	Err     error
}

// ActivityLoaded carries the recent activity events.
type ActivityLoaded struct {
	Events []domain.Event
	Err    error
}
