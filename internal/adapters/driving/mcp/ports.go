package mcp

import (
	"github.com/caopengau/aiready-skills/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Users manages customer accounts.
	Users driving.UserService

	// Orders manages orders.
	Orders driving.OrderService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Users == nil {
		return ErrMissingUserService
	}
	if p.Orders == nil {
		return ErrMissingOrderService
	}
	return nil
}
