package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order-admin/internal/domain"
	"order-admin/internal/repository"
)

// TestRepositoriesIntegration exercises both repositories against a live Postgres database.
func TestRepositoriesIntegration(t *testing.T) {
	dbURL := os.Getenv("ORDERADMIN_TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("set ORDERADMIN_TEST_DATABASE_URL to run this integration test")
	}

	ctx := context.Background()
	pool, err := Open(ctx, dbURL)
	require.NoError(t, err)
	defer pool.Close()

	users := NewUserRepository(pool)
	orders := NewOrderRepository(pool)

	email := fmt.Sprintf("it_%d@example.com", time.Now().UnixNano())
	user, err := users.Create(ctx, &domain.User{Email: email})
	require.NoError(t, err)
	t.Cleanup(func() { _ = users.Delete(context.Background(), user.ID) })
	assert.Equal(t, domain.RoleUser, user.Role)

	got, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = users.Create(ctx, &domain.User{Email: email})
	assert.ErrorIs(t, err, repository.ErrConstraintViolation)

	_, err = orders.Create(ctx, &domain.Order{UserID: "missing-" + email, Total: 1})
	assert.ErrorIs(t, err, repository.ErrConstraintViolation)

	order, err := orders.Create(ctx, &domain.Order{UserID: user.ID, Total: 1500.5})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, 1500.5, order.Total)
	assert.Equal(t, email, order.User.Email)

	completed := domain.OrderStatusCompleted
	updated, err := orders.Update(ctx, order.ID, domain.OrderPatch{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, updated.Status)
	assert.Equal(t, 1500.5, updated.Total)

	mine, err := orders.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	require.NoError(t, orders.Delete(ctx, order.ID))
	_, err = orders.GetByID(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, orders.Delete(ctx, order.ID), repository.ErrNotFound)

	_, err = users.Update(ctx, "missing-"+email, domain.UserPatch{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
