package domain

// Record is the constraint shared by every keyed record type.
//
// A record exposes its integer key, can produce a copy carrying a
// different key, and knows its own creation rule. The constraint is
// what lets a single store or service implementation manage any entity
// kind; User and Order both satisfy Record of themselves.
type Record[R any] interface {
	// Key returns the record's unique identifier.
	Key() int

	// WithKey returns a copy of the record carrying the given identifier.
	WithKey(id int) R

	// Validate checks the record against its creation rule.
	Validate() error
}
