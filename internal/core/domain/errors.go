package domain

import "errors"

// Domain errors represent business rule failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidEmail indicates a user email that is empty or has no "@".
	// Returned by user creation; see User.Validate.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidAmount indicates a non-positive order amount.
	// Returned by order creation; see Order.Validate.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrNotFound indicates a requested record does not exist in a store.
	// Only the storage layer returns it; services translate it into an
	// absent value, so callers above them never see this error.
	ErrNotFound = errors.New("not found")

	// ErrInvalidStatus indicates an unrecognised order status value,
	// e.g. read back from a persistent store.
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrNotImplemented indicates functionality is not yet available,
	// e.g. a service running without its store.
	ErrNotImplemented = errors.New("not implemented")

	// Settings Errors.

	// ErrInvalidBackend indicates an unrecognised store backend name.
	ErrInvalidBackend = errors.New("invalid store backend")

	// ErrInvalidTaxRate indicates a tax rate outside [0, 1).
	ErrInvalidTaxRate = errors.New("tax rate must be at least 0 and below 1")

	// ErrInvalidEventLimit indicates a negative activity listing size.
	ErrInvalidEventLimit = errors.New("event limit must not be negative")
)
