package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order-admin/internal/domain"
	"order-admin/internal/repository"
	"order-admin/internal/repository/sqlite"
)

func newServices(t *testing.T) (UserService, OrderService) {
	t.Helper()
	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserService(sqlite.NewUserRepository(db)), NewOrderService(sqlite.NewOrderRepository(db))
}

func strPtr(s string) *string { return &s }

func TestParseTotal(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "1500.50", want: 1500.5},
		{in: " 42 ", want: 42},
		{in: "0", want: 0},
		{in: "19.999", want: 20},
		{in: "1e3", want: 1000},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "Inf", wantErr: true},
		{in: "Infinity", wantErr: true},
		{in: "0x1p3", wantErr: true},
		{in: "0x10", wantErr: true},
		{in: "1_000", wantErr: true},
		{in: "1e400", wantErr: true},
		{in: ".5", want: 0.5},
		{in: "+3.", want: 3},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTotal(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUserServiceDefaultsAndValidation(t *testing.T) {
	ctx := context.Background()
	users, _ := newServices(t)

	user, err := users.Create(ctx, "a@b.com", "")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)

	admin, err := users.Create(ctx, "root@b.com", "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)

	_, err = users.Create(ctx, "x@b.com", "superuser")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = users.Create(ctx, "", "user")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = users.Create(ctx, "a@b.com", "")
	assert.ErrorIs(t, err, repository.ErrConstraintViolation)

	got, err := users.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserServiceGetByEmail(t *testing.T) {
	ctx := context.Background()
	users, _ := newServices(t)

	user, err := users.Create(ctx, "find@b.com", "admin")
	require.NoError(t, err)

	got, err := users.GetByEmail(ctx, "find@b.com")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = users.GetByEmail(ctx, "nobody@b.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = users.GetByEmail(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUserServiceUpdateIgnoresEmptyFields(t *testing.T) {
	ctx := context.Background()
	users, _ := newServices(t)

	user, err := users.Create(ctx, "a@b.com", "")
	require.NoError(t, err)

	same, err := users.Update(ctx, user.ID, UserUpdate{})
	require.NoError(t, err)
	assert.Equal(t, user, same)

	same, err = users.Update(ctx, user.ID, UserUpdate{Email: strPtr(""), Role: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, user, same)

	updated, err := users.Update(ctx, user.ID, UserUpdate{Role: strPtr("admin")})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, updated.Role)
	assert.Equal(t, "a@b.com", updated.Email)

	_, err = users.Update(ctx, user.ID, UserUpdate{Role: strPtr("owner")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = users.Update(ctx, "missing", UserUpdate{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserServiceDelete(t *testing.T) {
	ctx := context.Background()
	users, _ := newServices(t)

	user, err := users.Create(ctx, "a@b.com", "")
	require.NoError(t, err)
	require.NoError(t, users.Delete(ctx, user.ID))

	_, err = users.Get(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, users.Delete(ctx, user.ID), repository.ErrNotFound)
}

func TestOrderServiceCreate(t *testing.T) {
	ctx := context.Background()
	users, orders := newServices(t)

	owner, err := users.Create(ctx, "owner@b.com", "")
	require.NoError(t, err)

	order, err := orders.Create(ctx, owner.ID, "1500.50", "")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, 1500.5, order.Total)
	assert.Equal(t, owner.Email, order.User.Email)

	got, err := orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, got)

	_, err = orders.Create(ctx, owner.ID, "ten", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = orders.Create(ctx, owner.ID, "10", "shipped")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = orders.Create(ctx, "nobody", "10", "")
	assert.ErrorIs(t, err, repository.ErrConstraintViolation)

	list, err := orders.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestOrderServiceUpdateOnlyTouchesSuppliedFields(t *testing.T) {
	ctx := context.Background()
	users, orders := newServices(t)

	owner, err := users.Create(ctx, "owner@b.com", "")
	require.NoError(t, err)
	order, err := orders.Create(ctx, owner.ID, "250", "processing")
	require.NoError(t, err)

	same, err := orders.Update(ctx, order.ID, OrderUpdate{})
	require.NoError(t, err)
	assert.Equal(t, order, same)

	updated, err := orders.Update(ctx, order.ID, OrderUpdate{Status: strPtr("completed")})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, updated.Status)
	assert.Equal(t, 250.0, updated.Total)

	updated, err = orders.Update(ctx, order.ID, OrderUpdate{Total: strPtr("300.25"), Status: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, 300.25, updated.Total)
	assert.Equal(t, domain.OrderStatusCompleted, updated.Status)

	_, err = orders.Update(ctx, order.ID, OrderUpdate{Total: strPtr("-5")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = orders.Update(ctx, "missing", OrderUpdate{Status: strPtr("cancelled")})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, orders.Delete(ctx, order.ID))
	_, err = orders.Get(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
