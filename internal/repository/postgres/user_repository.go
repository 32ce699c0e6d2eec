package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"order-admin/internal/domain"
	"order-admin/internal/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository provides Postgres-backed persistence for users.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts a user row and returns it as stored.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = domain.RoleUser
	}

	const query = `
		INSERT INTO users (id, email, role)
		VALUES ($1, $2, $3)
		RETURNING id, email, role, created_at;`
	created, err := scanUser(r.pool.QueryRow(ctx, query, user.ID, user.Email, string(user.Role)))
	if err != nil {
		return nil, wrapErr("insert user", err)
	}
	return created, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `SELECT id, email, role, created_at FROM users WHERE id = $1;`
	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, wrapErr("get user", err)
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT id, email, role, created_at FROM users WHERE email = $1;`
	user, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		return nil, wrapErr("get user by email", err)
	}
	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `SELECT id, email, role, created_at FROM users ORDER BY id DESC;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, wrapErr("list users", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, wrapErr("scan user", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate users", err)
	}
	return users, nil
}

// Update applies the non-nil fields of patch.
func (r *UserRepository) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	var role *string
	if patch.Role != nil {
		v := string(*patch.Role)
		role = &v
	}

	const query = `
		UPDATE users
		SET email = COALESCE($2, email),
			role = COALESCE($3, role)
		WHERE id = $1
		RETURNING id, email, role, created_at;`
	user, err := scanUser(r.pool.QueryRow(ctx, query, id, patch.Email, role))
	if err != nil {
		return nil, wrapErr("update user", err)
	}
	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1;`, id)
	if err != nil {
		return wrapErr("delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user domain.User
		role string
	)
	if err := row.Scan(&user.ID, &user.Email, &role, &user.CreatedAt); err != nil {
		return nil, err
	}
	user.Role = domain.Role(role)
	user.CreatedAt = user.CreatedAt.UTC()
	return &user, nil
}
