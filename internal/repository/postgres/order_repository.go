package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"order-admin/internal/domain"
	"order-admin/internal/repository"
)

var _ repository.OrderRepository = (*OrderRepository)(nil)

const orderProjection = `
	o.id, o.user_id, o.total, o.status, o.created_at,
	u.id, u.email, u.role, u.created_at`

// OrderRepository provides Postgres-backed persistence for orders joined with their owner.
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}

	const query = `
		WITH inserted AS (
			INSERT INTO orders (id, user_id, total, status)
			VALUES ($1, $2, $3, $4)
			RETURNING id, user_id, total, status, created_at
		)
		SELECT` + orderProjection + `
		FROM inserted o
		JOIN users u ON u.id = o.user_id;`
	created, err := scanOrder(r.pool.QueryRow(ctx, query, order.ID, order.UserID, order.Total, string(order.Status)))
	if err != nil {
		return nil, wrapErr("insert order", err)
	}
	return created, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const query = `
		SELECT` + orderProjection + `
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.id = $1;`
	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, wrapErr("get order", err)
	}
	return order, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	const query = `
		SELECT` + orderProjection + `
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC;`
	return r.query(ctx, "list orders", query)
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const query = `
		SELECT` + orderProjection + `
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC;`
	return r.query(ctx, "list user orders", query, userID)
}

func (r *OrderRepository) query(ctx context.Context, op, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, wrapErr(op, err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return orders, nil
}

// Update applies the non-nil fields of patch and returns the joined row.
func (r *OrderRepository) Update(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error) {
	var status *string
	if patch.Status != nil {
		v := string(*patch.Status)
		status = &v
	}

	const query = `
		WITH updated AS (
			UPDATE orders
			SET total = COALESCE($2, total),
				status = COALESCE($3, status)
			WHERE id = $1
			RETURNING id, user_id, total, status, created_at
		)
		SELECT` + orderProjection + `
		FROM updated o
		JOIN users u ON u.id = o.user_id;`
	order, err := scanOrder(r.pool.QueryRow(ctx, query, id, patch.Total, status))
	if err != nil {
		return nil, wrapErr("update order", err)
	}
	return order, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1;`, id)
	if err != nil {
		return wrapErr("delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order     domain.Order
		status    string
		ownerRole string
	)
	if err := row.Scan(
		&order.ID, &order.UserID, &order.Total, &status, &order.CreatedAt,
		&order.User.ID, &order.User.Email, &ownerRole, &order.User.CreatedAt,
	); err != nil {
		return nil, err
	}
	order.Status = domain.OrderStatus(status)
	order.CreatedAt = order.CreatedAt.UTC()
	order.User.Role = domain.Role(ownerRole)
	order.User.CreatedAt = order.User.CreatedAt.UTC()
	return &order, nil
}
