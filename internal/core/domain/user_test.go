package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_String(t *testing.T) {
	u := User{ID: 1, Name: "Alice", Email: "alice@example.com"}
	assert.Equal(t, "User(1, Alice, alice@example.com)", u.String())
}

func TestUser_Key(t *testing.T) {
	u := User{ID: 7, Name: "Grace", Email: "grace@example.com"}
	assert.Equal(t, 7, u.Key())
}

func TestUser_WithKey(t *testing.T) {
	u := User{ID: 1, Name: "Alice", Email: "alice@example.com"}
	reKeyed := u.WithKey(9)

	assert.Equal(t, 9, reKeyed.ID)
	assert.Equal(t, "Alice", reKeyed.Name)
	assert.Equal(t, 1, u.ID, "original must be unchanged")
}

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{"valid email", "alice@example.com", nil},
		{"bare at-sign still passes", "weird@", nil},
		{"empty email", "", ErrInvalidEmail},
		{"missing at-sign", "bad-email", ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := User{Name: "X", Email: tt.email}
			err := u.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
