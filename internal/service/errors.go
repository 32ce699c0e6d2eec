package service

import "errors"

// ErrInvalidInput indicates a value that failed coercion or validation before reaching storage.
var ErrInvalidInput = errors.New("invalid input")
