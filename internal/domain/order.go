package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a purchase placed by a user. User is populated on every read.
type Order struct {
	ID        string
	UserID    string
	Total     float64
	Status    OrderStatus
	CreatedAt time.Time
	User      User
}

// OrderPatch carries the fields of a partial order update. Nil fields are left unchanged.
type OrderPatch struct {
	Total  *float64
	Status *OrderStatus
}
