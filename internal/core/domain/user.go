package domain

import (
	"fmt"
	"strings"
)

// User represents a customer account.
type User struct {
	// ID is the unique identifier for the user.
	ID int

	// Name is the user's display name.
	Name string

	// Email is the user's contact address.
	Email string
}

// Key returns the user's unique identifier.
func (u User) Key() int {
	return u.ID
}

// WithKey returns a copy of the user carrying the given identifier.
func (u User) WithKey(id int) User {
	u.ID = id
	return u
}

// Validate checks the creation rule for users: the email must be
// non-empty and contain an "@". This is deliberately looser than
// ValidEmail, which checks the full address shape.
func (u User) Validate() error {
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// String returns a human-readable rendering,
// e.g. "User(1, Alice, alice@example.com)".
func (u User) String() string {
	return fmt.Sprintf("User(%d, %s, %s)", u.ID, u.Name, u.Email)
}
