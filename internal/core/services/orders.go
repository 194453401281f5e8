package services

import (
	"context"
	"fmt"

	"github.com/caopengau/aiready-skills/internal/core/domain"
	"github.com/caopengau/aiready-skills/internal/core/ports/driven"
	"github.com/caopengau/aiready-skills/internal/core/ports/driving"
)

// Ensure OrderService implements the interface.
var _ driving.OrderService = (*OrderService)(nil)

// OrderService manages orders.
type OrderService struct {
	records  *Collection[domain.Order]
	settings driving.SettingsService
	activity driving.ActivityService
}

// NewOrderService creates a new order service over the given store.
func NewOrderService(store driven.RecordStore[domain.Order]) *OrderService {
	return &OrderService{records: NewCollection(store)}
}

// SetSettings sets the settings source for quote currency and tax rate.
func (s *OrderService) SetSettings(settings driving.SettingsService) {
	s.settings = settings
}

// SetActivity sets the activity log used to record operations.
func (s *OrderService) SetActivity(activity driving.ActivityService) {
	s.activity = activity
}

// List returns all orders.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.records.List(ctx)
}

// Get retrieves an order by ID. Returns (nil, nil) when absent.
func (s *OrderService) Get(ctx context.Context, id int) (*domain.Order, error) {
	return s.records.Get(ctx, id)
}

// Create validates and stores a new pending order, assigning its ID.
// The user reference is not checked against the user store.
func (s *OrderService) Create(ctx context.Context, userID int, product string, amount float64) (*domain.Order, error) {
	order, err := s.records.Create(ctx, domain.Order{
		UserID:  userID,
		Product: product,
		Amount:  amount,
		Status:  domain.OrderStatusPending,
	})
	if err != nil {
		return nil, err
	}
	s.record(ctx, "order.create", fmt.Sprintf("order %d", order.ID), order.Product)
	return order, nil
}

// Cancel marks an order cancelled, reporting whether it existed.
func (s *OrderService) Cancel(ctx context.Context, id int) (bool, error) {
	order, err := s.records.Mutate(ctx, id, func(o domain.Order) domain.Order {
		o.Status = domain.OrderStatusCancelled
		return o
	})
	if err != nil {
		return false, err
	}
	if order == nil {
		return false, nil
	}
	s.record(ctx, "order.cancel", fmt.Sprintf("order %d", id), "")
	return true, nil
}

// Quote prices an order with the configured currency and tax rate,
// falling back to the defaults when no settings service is set.
// Returns (nil, nil) when the order is absent.
func (s *OrderService) Quote(ctx context.Context, id int) (*domain.Quote, error) {
	order, err := s.records.Get(ctx, id)
	if err != nil || order == nil {
		return nil, err
	}
	currency := domain.DefaultCurrency
	rate := domain.DefaultTaxRate
	if s.settings != nil {
		if current, err := s.settings.Get(); err == nil {
			currency = current.Currency
			rate = current.TaxRate
		}
	}
	quote := domain.NewQuote(*order, currency, rate)
	return &quote, nil
}

// record appends to the activity log when one is configured.
func (s *OrderService) record(ctx context.Context, action, entity, detail string) {
	if s.activity == nil {
		return
	}
	//nolint:errcheck // Activity logging must not fail the operation.
	_ = s.activity.Record(ctx, action, entity, detail)
}
