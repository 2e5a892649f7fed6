// Package service provides business logic for the application.
package service

import "errors"

// Service errors. Handlers map these to HTTP responses; nothing below the
// handler boundary panics or carries transport detail.
var (
	ErrInvalidID             = errors.New("invalid user ID format")
	ErrInvalidDuration       = errors.New("invalid duration")
	ErrInvalidDate           = errors.New("invalid date")
	ErrUserNotFound          = errors.New("user not found")
	ErrInternalInconsistency = errors.New("user could not be created or located")
	ErrStoreUnavailable      = errors.New("store unavailable")
)
