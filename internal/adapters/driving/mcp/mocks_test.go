package mcp

import (
	"context"

	"github.com/caopengau/aiready-skills/internal/core/domain"
)

// mockUserService is a mock implementation of driving.UserService.
type mockUserService struct {
	users []domain.User
	user  *domain.User
	err   error
}

func (m *mockUserService) List(_ context.Context) ([]domain.User, error) {
	return m.users, m.err
}

func (m *mockUserService) Get(_ context.Context, _ int) (*domain.User, error) {
	return m.user, m.err
}

func (m *mockUserService) Create(_ context.Context, _, _ string) (*domain.User, error) {
	return m.user, m.err
}

func (m *mockUserService) Update(_ context.Context, _ int, _, _ string) (*domain.User, error) {
	return m.user, m.err
}

func (m *mockUserService) Delete(_ context.Context, _ int) (bool, error) {
	return m.user != nil, m.err
}

// mockOrderService is a mock implementation of driving.OrderService.
type mockOrderService struct {
	orders    []domain.Order
	order     *domain.Order
	quote     *domain.Quote
	cancelled bool
	err       error
}

func (m *mockOrderService) List(_ context.Context) ([]domain.Order, error) {
	return m.orders, m.err
}

func (m *mockOrderService) Get(_ context.Context, _ int) (*domain.Order, error) {
	return m.order, m.err
}

func (m *mockOrderService) Create(_ context.Context, _ int, _ string, _ float64) (*domain.Order, error) {
	return m.order, m.err
}

func (m *mockOrderService) Cancel(_ context.Context, _ int) (bool, error) {
	return m.cancelled, m.err
}

func (m *mockOrderService) Quote(_ context.Context, _ int) (*domain.Quote, error) {
	return m.quote, m.err
}
