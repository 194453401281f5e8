package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/caopengau/aiready-skills/internal/core/domain"
	"github.com/caopengau/aiready-skills/internal/core/ports/driven"
)

// orderStore implements driven.RecordStore[domain.Order].
type orderStore struct {
	store *Store
}

var _ driven.RecordStore[domain.Order] = (*orderStore)(nil)

// List returns all orders ordered by key.
func (s *orderStore) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, user_id, product, amount, status FROM orders ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order //nolint:prealloc // size unknown from query
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}

	return orders, nil
}

// Get retrieves an order by key.
func (s *orderStore) Get(ctx context.Context, id int) (*domain.Order, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, user_id, product, amount, status FROM orders WHERE id = ?
	`, id)

	var order domain.Order
	var status string
	if err := row.Scan(&order.ID, &order.UserID, &order.Product, &order.Amount, &status); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning order: %w", err)
	}

	order.Status = domain.OrderStatus(status)
	if !order.Status.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, status)
	}

	return &order, nil
}

// Put stores or updates an order under its key.
func (s *orderStore) Put(ctx context.Context, order domain.Order) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, product, amount, status)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			product = excluded.product,
			amount = excluded.amount,
			status = excluded.status
	`, order.ID, order.UserID, order.Product, order.Amount, order.Status.String())

	if err != nil {
		return fmt.Errorf("saving order: %w", err)
	}
	return nil
}

// Delete removes an order by key.
func (s *orderStore) Delete(ctx context.Context, id int) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}
	return nil
}

// scanOrder scans an order from *sql.Rows.
func scanOrder(rows *sql.Rows) (*domain.Order, error) {
	var order domain.Order
	var status string
	if err := rows.Scan(&order.ID, &order.UserID, &order.Product, &order.Amount, &status); err != nil {
		return nil, fmt.Errorf("scanning order: %w", err)
	}

	order.Status = domain.OrderStatus(status)
	if !order.Status.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, status)
	}

	return &order, nil
}
