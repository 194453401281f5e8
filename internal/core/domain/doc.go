// Package domain defines the core business entities for minishop.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - User: A customer account with a name and email
//   - Order: A purchase tied to a user, with an amount and a status
//   - Event: An activity-log entry recording a completed operation
//
// It also holds the pure helpers shared by every layer: email
// validation, currency formatting, tax calculation, and ID checks.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
