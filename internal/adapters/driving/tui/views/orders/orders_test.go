package orders

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caopengau/aiready-skills/internal/adapters/driving/tui/messages"
	"github.com/caopengau/aiready-skills/internal/adapters/driving/tui/styles"
	"github.com/caopengau/aiready-skills/internal/core/domain"
)

// MockOrderService implements driving.OrderService for testing.
type MockOrderService struct {
	ListFunc   func(ctx context.Context) ([]domain.Order, error)
	CancelFunc func(ctx context.Context, id int) (bool, error)
}

func (m *MockOrderService) List(ctx context.Context) ([]domain.Order, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []domain.Order{}, nil
}

func (m *MockOrderService) Get(ctx context.Context, id int) (*domain.Order, error) {
	return nil, nil
}

func (m *MockOrderService) Create(ctx context.Context, userID int, product string, amount float64) (*domain.Order, error) {
	return nil, nil
}

func (m *MockOrderService) Cancel(ctx context.Context, id int) (bool, error) {
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, id)
	}
	return false, nil
}

func (m *MockOrderService) Quote(ctx context.Context, id int) (*domain.Quote, error) {
	return nil, nil
}

func seedOrders() []domain.Order {
	return []domain.Order{
		{ID: 1, UserID: 1, Product: "Laptop", Amount: 999.99, Status: domain.OrderStatusPending},
		{ID: 2, UserID: 2, Product: "Phone", Amount: 699.99, Status: domain.OrderStatusPending},
	}
}

func TestNewView(t *testing.T) {
	s := styles.DefaultStyles()
	mock := &MockOrderService{}

	view := NewView(s, mock)

	require.NotNil(t, view)
	assert.False(t, view.ready)
	assert.Empty(t, view.orders)
	assert.Equal(t, 0, view.selected)
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil, nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.Nil(t, view.orderService)
}

func TestView_Init(t *testing.T) {
	mock := &MockOrderService{
		ListFunc: func(ctx context.Context) ([]domain.Order, error) {
			return seedOrders(), nil
		},
	}
	view := NewView(nil, mock)

	cmd := view.Init()

	require.NotNil(t, cmd)
	assert.True(t, view.loading)
	result := cmd()
	loaded, ok := result.(messages.OrdersLoaded)
	require.True(t, ok)
	assert.Len(t, loaded.Orders, 2)
	assert.NoError(t, loaded.Err)
}

func TestView_Init_NilService(t *testing.T) {
	view := NewView(nil, nil)

	cmd := view.Init()

	require.NotNil(t, cmd)
	result := cmd()
	loaded, ok := result.(messages.OrdersLoaded)
	require.True(t, ok)
	assert.Error(t, loaded.Err)
}

func TestView_Update_OrdersLoaded(t *testing.T) {
	view := NewView(nil, nil)
	view.loading = true

	view.Update(messages.OrdersLoaded{Orders: seedOrders()})

	assert.False(t, view.loading)
	assert.NoError(t, view.Err())
	assert.Len(t, view.Orders(), 2)
}

func TestView_Update_OrdersLoaded_Error(t *testing.T) {
	view := NewView(nil, nil)
	view.loading = true

	view.Update(messages.OrdersLoaded{Err: errors.New("store unavailable")})

	assert.False(t, view.loading)
	assert.Error(t, view.Err())
}

func TestView_Update_Navigation(t *testing.T) {
	view := NewView(nil, nil)
	view.Update(messages.OrdersLoaded{Orders: seedOrders()})

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	view.Update(down)
	assert.Equal(t, 1, view.SelectedIndex())

	// Boundary
	view.Update(down)
	assert.Equal(t, 1, view.SelectedIndex())

	up := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	view.Update(up)
	assert.Equal(t, 0, view.SelectedIndex())
}

func TestView_Update_CancelKey(t *testing.T) {
	cancelled := 0
	mock := &MockOrderService{
		CancelFunc: func(ctx context.Context, id int) (bool, error) {
			cancelled = id
			return true, nil
		},
	}
	view := NewView(nil, mock)
	view.Update(messages.OrdersLoaded{Orders: seedOrders()})
	view.selected = 1

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}}
	_, cmd := view.Update(msg)

	require.NotNil(t, cmd)
	result := cmd()
	done, ok := result.(messages.OrderCancelled)
	require.True(t, ok)
	assert.Equal(t, 2, done.ID)
	assert.True(t, done.Existed)
	assert.Equal(t, 2, cancelled)
}

func TestView_Update_CancelKey_EmptyList(t *testing.T) {
	view := NewView(nil, &MockOrderService{})

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}}
	_, cmd := view.Update(msg)

	assert.Nil(t, cmd)
}

func TestView_Update_OrderCancelled_Reloads(t *testing.T) {
	mock := &MockOrderService{
		ListFunc: func(ctx context.Context) ([]domain.Order, error) {
			cancelled := seedOrders()
			cancelled[1].Status = domain.OrderStatusCancelled
			return cancelled, nil
		},
	}
	view := NewView(nil, mock)
	view.Update(messages.OrdersLoaded{Orders: seedOrders()})

	_, cmd := view.Update(messages.OrderCancelled{ID: 2, Existed: true})

	require.NotNil(t, cmd)
	assert.True(t, view.loading)
	result := cmd()
	loaded, ok := result.(messages.OrdersLoaded)
	require.True(t, ok)
	assert.Equal(t, domain.OrderStatusCancelled, loaded.Orders[1].Status)
}

func TestView_Update_OrderCancelled_Error(t *testing.T) {
	view := NewView(nil, nil)

	_, cmd := view.Update(messages.OrderCancelled{ID: 1, Err: errors.New("boom")})

	assert.Nil(t, cmd)
	assert.Error(t, view.Err())
}

func TestView_View_Loading(t *testing.T) {
	view := NewView(nil, nil)
	view.loading = true

	output := view.View()

	assert.Contains(t, output, "Loading orders")
}

func TestView_View_Error(t *testing.T) {
	view := NewView(nil, nil)
	view.err = errors.New("store unavailable")

	output := view.View()

	assert.Contains(t, output, "Error")
	assert.Contains(t, output, "store unavailable")
}

func TestView_View_Empty(t *testing.T) {
	view := NewView(nil, nil)

	output := view.View()

	assert.Contains(t, output, "No orders found.")
}

func TestView_View_WithOrders(t *testing.T) {
	view := NewView(nil, nil)
	view.Update(messages.OrdersLoaded{Orders: seedOrders()})

	output := view.View()

	assert.Contains(t, output, "Orders")
	assert.Contains(t, output, "Laptop")
	assert.Contains(t, output, "$999.99")
	assert.Contains(t, output, "pending")
	assert.Contains(t, output, "Phone")
	assert.Contains(t, output, "2 orders")
}

func TestView_SetDimensions(t *testing.T) {
	view := NewView(nil, nil)

	view.SetDimensions(120, 60)

	assert.Equal(t, 120, view.width)
	assert.Equal(t, 60, view.height)
	assert.True(t, view.ready)
}
