package utils

import "errors"

var (
	ErrUnauthorized       = errors.New("authentication required")
	ErrTripNotFound       = errors.New("trip not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrInvalidInput       = errors.New("invalid input")
	ErrPlanGeneration     = errors.New("trip plan generation failed")
	ErrPhotoSearch        = errors.New("photo search failed")
	ErrDatabaseError      = errors.New("database error")
)
