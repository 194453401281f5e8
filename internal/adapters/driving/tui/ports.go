// Package tui provides an interactive terminal user interface for minishop.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/caopengau/aiready-skills/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Users manages customer accounts.
	Users driving.UserService

	// Orders manages orders.
	Orders driving.OrderService

	// Activity reports what the application has done.
	Activity driving.ActivityService

	// Settings manages application settings. Optional; views fall back
	// to defaults when nil.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	users driving.UserService,
	orders driving.OrderService,
	activity driving.ActivityService,
) *Ports {
	return &Ports{
		Users:    users,
		Orders:   orders,
		Activity: activity,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Users == nil {
		return ErrMissingUserService
	}
	if p.Orders == nil {
		return ErrMissingOrderService
	}
	if p.Activity == nil {
		return ErrMissingActivityService
	}
	return nil
}
