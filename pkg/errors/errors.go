package registry_errors

import (
	"errors"
)

// Registration validation errors. The message of each is shown to the client verbatim.
var (
	ErrInvalidUsername           = errors.New("Username must be between 6 and 20 characters")
	ErrInvalidPasswordLength     = errors.New("Password must be between 8 and 36 characters")
	ErrInvalidPasswordComplexity = errors.New("Password must be contain at least one digit")
	ErrInvalidClub               = errors.New("Favorite Club must be one of 'Cache Valley Stone Society', 'Ogden Curling Club', 'Park City Curling Club', 'Salt City Curling Club' or 'Utah Olympic Oval Curling Club'")
)

// Common errors
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrRateLimited  = errors.New("rate limited")
)

var validationErrors = []error{
	ErrInvalidUsername,
	ErrInvalidPasswordLength,
	ErrInvalidPasswordComplexity,
	ErrInvalidClub,
}

// IsValidationError reports whether err is one of the registration validation errors.
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
