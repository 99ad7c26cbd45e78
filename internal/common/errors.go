// Package common defines shared constants and sentinel errors used across
// the repository and service layers of finboard. Callers should use
// errors.Is to match these values; services wrap them with a human-readable
// message.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors, raised before any persistence attempt.
	ErrValidation = errors.New("validation error")

	// Roster errors.
	ErrDuplicateUsername = errors.New("username already exists")
	ErrUserNotFound      = errors.New("user not found")

	// Session errors.
	ErrNotAuthenticated = errors.New("user not authenticated")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
)
