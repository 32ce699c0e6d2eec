package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"order-admin/internal/repository"
)

// integrity constraint violations share SQLSTATE class 23
const integrityViolationClass = "23"

func wrapErr(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, integrityViolationClass) {
		return fmt.Errorf("%s: %w: %w", op, repository.ErrConstraintViolation, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
