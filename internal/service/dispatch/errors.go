package dispatch

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDate           = errors.New("invalid lti date, expected YYYY-MM-DD")
	ErrInvalidNumber         = errors.New("invalid dispatch number")
	ErrEmptyLines            = errors.New("dispatch has no lines")
	ErrLineNotFound          = errors.New("line not found in draft")

	ErrDispatchNotFound = errors.New("dispatch not found")
	ErrConflict         = errors.New("dispatch line already exists")
)
