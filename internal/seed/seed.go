// Package seed installs a small, idempotent demo data set.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"order-admin/internal/domain"
	"order-admin/internal/repository"
)

// DemoEmail is the owner of every seeded order.
const DemoEmail = "test@example.com"

// DemoOrders lists the seeded orders keyed by fixed ids.
var DemoOrders = []domain.Order{
	{ID: "order-1", Total: 1500.50, Status: domain.OrderStatusCompleted},
	{ID: "order-2", Total: 2300.00, Status: domain.OrderStatusPending},
	{ID: "order-3", Total: 999.99, Status: domain.OrderStatusProcessing},
}

// Result reports what Run created.
type Result struct {
	UserCreated   bool
	OrdersCreated int
}

// Run creates the demo user and orders unless they already exist. Existing rows are left untouched.
func Run(ctx context.Context, users repository.UserRepository, orders repository.OrderRepository, logger *logrus.Logger) (Result, error) {
	var res Result

	user, err := users.GetByEmail(ctx, DemoEmail)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		user, err = users.Create(ctx, &domain.User{Email: DemoEmail, Role: domain.RoleUser})
		if err != nil {
			return res, fmt.Errorf("seed user: %w", err)
		}
		res.UserCreated = true
		logger.WithField("user_id", user.ID).Info("seeded demo user")
	case err != nil:
		return res, fmt.Errorf("lookup seed user: %w", err)
	}

	for _, tmpl := range DemoOrders {
		_, err := orders.GetByID(ctx, tmpl.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return res, fmt.Errorf("lookup seed order %s: %w", tmpl.ID, err)
		}

		order := tmpl
		order.UserID = user.ID
		if _, err := orders.Create(ctx, &order); err != nil {
			return res, fmt.Errorf("seed order %s: %w", tmpl.ID, err)
		}
		res.OrdersCreated++
		logger.WithField("order_id", order.ID).Info("seeded demo order")
	}
	return res, nil
}
