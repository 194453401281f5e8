package cli

import (
	"context"
	"errors"

	"github.com/caopengau/aiready-skills/internal/adapters/driven/storage/memory"
	"github.com/caopengau/aiready-skills/internal/adapters/driven/storage/seed"
	"github.com/caopengau/aiready-skills/internal/core/domain"
	"github.com/caopengau/aiready-skills/internal/core/services"
)

// setupTestServices installs a real service stack over seeded memory
// stores so commands run against the fixture dataset with writes that
// stick for the duration of the test. The returned cleanup restores
// whatever was wired before.
func setupTestServices() func() {
	oldUsers := userService
	oldOrders := orderService
	oldActivity := activityService
	oldSettings := settingsService

	settings := services.NewSettingsService(memory.NewConfigStore())
	activity := services.NewActivityService(memory.NewEventLog(0))

	users := services.NewUserService(memory.NewSeededRecordStore(seed.Users()))
	users.SetActivity(activity)

	orders := services.NewOrderService(memory.NewSeededRecordStore(seed.Orders()))
	orders.SetActivity(activity)
	orders.SetSettings(settings)

	userService = users
	orderService = orders
	activityService = activity
	settingsService = settings

	return func() {
		userService = oldUsers
		orderService = oldOrders
		activityService = oldActivity
		settingsService = oldSettings
	}
}

var errStoreUnavailable = errors.New("store unavailable")

// mockUserServiceError fails every user operation.
type mockUserServiceError struct{}

func (m *mockUserServiceError) List(_ context.Context) ([]domain.User, error) {
	return nil, errStoreUnavailable
}

func (m *mockUserServiceError) Get(_ context.Context, _ int) (*domain.User, error) {
	return nil, errStoreUnavailable
}

func (m *mockUserServiceError) Create(_ context.Context, _, _ string) (*domain.User, error) {
	return nil, errStoreUnavailable
}

func (m *mockUserServiceError) Update(_ context.Context, _ int, _, _ string) (*domain.User, error) {
	return nil, errStoreUnavailable
}

func (m *mockUserServiceError) Delete(_ context.Context, _ int) (bool, error) {
	return false, errStoreUnavailable
}

// mockOrderServiceError fails every order operation.
type mockOrderServiceError struct{}

func (m *mockOrderServiceError) List(_ context.Context) ([]domain.Order, error) {
	return nil, errStoreUnavailable
}

func (m *mockOrderServiceError) Get(_ context.Context, _ int) (*domain.Order, error) {
	return nil, errStoreUnavailable
}

func (m *mockOrderServiceError) Create(_ context.Context, _ int, _ string, _ float64) (*domain.Order, error) {
	return nil, errStoreUnavailable
}

func (m *mockOrderServiceError) Cancel(_ context.Context, _ int) (bool, error) {
	return false, errStoreUnavailable
}

func (m *mockOrderServiceError) Quote(_ context.Context, _ int) (*domain.Quote, error) {
	return nil, errStoreUnavailable
}
