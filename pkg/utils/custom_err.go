package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrTripNotFound       = errors.New("trip not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrGenerationFailed   = errors.New("itinerary generation failed")
	ErrDatabaseError      = errors.New("database error")
)
