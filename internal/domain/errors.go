package domain

import "errors"

// Domain errors (no external dependencies). Handlers map these to HTTP status codes.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailAlreadyExists = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("not authenticated")
	ErrForbidden          = errors.New("access denied")
)
