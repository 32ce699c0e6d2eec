package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"order-admin/internal/domain"
	"order-admin/internal/repository"
)

const selectOrders = `
SELECT o.id, o.user_id, o.total, o.status, o.created_at,
	u.id, u.email, u.role, u.created_at
FROM orders o
JOIN users u ON u.id = o.user_id`

type OrderRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &OrderRepository{db: db, now: time.Now}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}
	order.CreatedAt = r.now().UTC().Truncate(time.Microsecond)

	if _, err := r.db.ExecContext(ctx, `
INSERT INTO orders (id, user_id, total, status, created_at)
VALUES (?, ?, ?, ?, ?)`,
		order.ID,
		order.UserID,
		order.Total,
		string(order.Status),
		order.CreatedAt,
	); err != nil {
		return nil, wrapErr("insert order", err)
	}
	return r.GetByID(ctx, order.ID)
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, selectOrders+` WHERE o.id = ?`, id)
	return scanOrder(row)
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	return r.query(ctx, "list orders", selectOrders+` ORDER BY o.created_at DESC`)
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return r.query(ctx, "list user orders", selectOrders+` WHERE o.user_id = ? ORDER BY o.created_at DESC`, userID)
}

func (r *OrderRepository) query(ctx context.Context, op, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return orders, nil
}

func (r *OrderRepository) Update(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error) {
	var status *string
	if patch.Status != nil {
		v := string(*patch.Status)
		status = &v
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE orders
SET total = COALESCE(?, total),
	status = COALESCE(?, status)
WHERE id = ?`,
		patch.Total,
		status,
		id,
	)
	if err != nil {
		return nil, wrapErr("update order", err)
	}
	if err := requireAffected(res, "update order"); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return wrapErr("delete order", err)
	}
	return requireAffected(res, "delete order")
}

func scanOrder(row interface {
	Scan(dest ...any) error
}) (*domain.Order, error) {
	var (
		order     domain.Order
		status    string
		ownerRole string
	)
	if err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.Total,
		&status,
		&order.CreatedAt,
		&order.User.ID,
		&order.User.Email,
		&ownerRole,
		&order.User.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, wrapErr("scan order", err)
	}
	order.Status = domain.OrderStatus(status)
	order.CreatedAt = order.CreatedAt.UTC()
	order.User.Role = domain.Role(ownerRole)
	order.User.CreatedAt = order.User.CreatedAt.UTC()
	return &order, nil
}
