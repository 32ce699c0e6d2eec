package service

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"order-admin/internal/domain"
	"order-admin/internal/repository"
)

// OrderUpdate holds optional order fields as received from clients.
// Nil or empty values leave the stored field unchanged.
type OrderUpdate struct {
	Total  *string
	Status *string
}

// OrderService coordinates order operations backed by the order repository.
type OrderService interface {
	List(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, userID, total, status string) (*domain.Order, error)
	Update(ctx context.Context, id string, in OrderUpdate) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

type orderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) OrderService {
	return &orderService{orders: orders}
}

func (s *orderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *orderService) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *orderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *orderService) Create(ctx context.Context, userID, total, status string) (*domain.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	amount, err := ParseTotal(total)
	if err != nil {
		return nil, err
	}
	st, err := parseStatus(status)
	if err != nil {
		return nil, err
	}
	return s.orders.Create(ctx, &domain.Order{
		UserID: userID,
		Total:  amount,
		Status: st,
	})
}

func (s *orderService) Update(ctx context.Context, id string, in OrderUpdate) (*domain.Order, error) {
	var patch domain.OrderPatch
	if in.Total != nil && *in.Total != "" {
		amount, err := ParseTotal(*in.Total)
		if err != nil {
			return nil, err
		}
		patch.Total = &amount
	}
	if in.Status != nil && *in.Status != "" {
		st, err := parseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		patch.Status = &st
	}
	return s.orders.Update(ctx, id, patch)
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}

var decimalTotal = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseTotal converts a client supplied amount into a non-negative value rounded to cents.
func ParseTotal(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: total is required", ErrInvalidInput)
	}
	if !decimalTotal.MatchString(raw) {
		return 0, fmt.Errorf("%w: total %q is not a number", ErrInvalidInput, raw)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: total %q is not a number", ErrInvalidInput, raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: total must not be negative", ErrInvalidInput)
	}
	return math.Round(v*100) / 100, nil
}

func parseStatus(raw string) (domain.OrderStatus, error) {
	if raw == "" {
		return domain.OrderStatusPending, nil
	}
	st := domain.OrderStatus(raw)
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, raw)
	}
	return st, nil
}
