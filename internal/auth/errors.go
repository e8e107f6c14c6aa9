package auth

import "errors"

// Domain-specific errors for the auth package.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)
