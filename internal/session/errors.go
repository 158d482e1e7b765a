package session

import (
	"errors"
	"strings"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrUserExists        = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrNoProductSelected = errors.New("no product selected")
	ErrKeyRequired       = errors.New("access key required")
	ErrKeyFormat         = errors.New("invalid access key format")
	ErrInvalidTheme      = errors.New("invalid theme")
	ErrClosed            = errors.New("session closed")
)

// ValidationError carries every violated rule in the order they were checked.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
