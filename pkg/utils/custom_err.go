package utils

import "errors"

var (
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidData   = errors.New("invalid data")
	ErrDuplicate     = errors.New("duplicate entity")
	ErrCardInvalid   = errors.New("card validation failed")
	ErrDatabaseError = errors.New("database error")
)
