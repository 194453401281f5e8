package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil user service returns error", func(t *testing.T) {
		ports := &Ports{
			Orders: &mockOrderService{},
		}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingUserService)
	})

	t.Run("nil order service returns error", func(t *testing.T) {
		ports := &Ports{
			Users: &mockUserService{},
		}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingOrderService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Users:  &mockUserService{},
			Orders: &mockOrderService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
		assert.NotNil(t, server.limiter)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("empty ports returns error", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingUserService)
	})

	t.Run("missing orders returns error", func(t *testing.T) {
		ports := &Ports{
			Users: &mockUserService{},
		}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingOrderService)
	})

	t.Run("both ports is valid", func(t *testing.T) {
		ports := &Ports{
			Users:  &mockUserService{},
			Orders: &mockOrderService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})
}
