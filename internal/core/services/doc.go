// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The user and order services share one generic Collection that
// implements the keyed-record CRUD pattern; each service instantiates
// it for its own record type. Persistence semantics come entirely from
// the injected store.
//
// Services are pure Go with no external dependencies.
package services
