package repository

import "errors"

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConstraintViolation wraps uniqueness, foreign key and check failures reported by the database.
	ErrConstraintViolation = errors.New("constraint violation")
)
