package access

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidKey            = errors.New("invalid admin key")
	ErrInvalidToken          = errors.New("invalid or expired admin token")
	ErrNotConfigured         = errors.New("admin access is not configured")
)
