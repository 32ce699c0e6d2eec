package sqlite

import (
	"errors"
	"fmt"

	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"order-admin/internal/repository"
)

// wrapErr prefixes err with op and tags constraint failures with repository.ErrConstraintViolation.
func wrapErr(op string, err error) error {
	var sqliteErr *sqlitedrv.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return fmt.Errorf("%s: %w: %w", op, repository.ErrConstraintViolation, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
