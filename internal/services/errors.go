package services

import "errors"

// Sentinel errors shared across services. Handlers translate these into the
// APIError envelope; repository errors are wrapped, never exposed raw.
var (
	ErrValidation      = errors.New("validation failed")
	ErrProductNotFound = errors.New("product not found")
	ErrListNotFound    = errors.New("list not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidPassword = errors.New("invalid email or password")
	ErrInvalidAdmLogin = errors.New("invalid admin credentials")
	ErrNoContactPhone  = errors.New("client has no contact phone")
)
