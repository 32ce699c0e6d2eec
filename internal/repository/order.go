package repository

import (
	"context"

	"order-admin/internal/domain"
)

// OrderRepository exposes persistence operations for orders. Every read joins the owning user.
type OrderRepository interface {
	// Create inserts order and returns the stored row. An empty ID is generated.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	Update(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
