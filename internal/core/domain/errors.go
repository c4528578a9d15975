package domain

import "errors"

// Validation
var (
	ErrValidation    = errors.New("validation failed")
	ErrInvalidStatus = errors.New("invalid message status")
	ErrInvalidRole   = errors.New("invalid role")
)

// Lookup
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrMessageNotFound = errors.New("message not found")
)

// Conflict
var ErrUserExists = errors.New("user already exists")

// Authentication and authorization
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenMissing       = errors.New("missing token")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrForbidden          = errors.New("access forbidden")
)

// ErrHashing is returned when the password hasher fails internally.
var ErrHashing = errors.New("password hashing failed")
