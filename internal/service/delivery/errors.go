package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDate           = errors.New("invalid loading date, expected YYYY-MM-DD")
	ErrEmptyLines            = errors.New("loading order has no lines")
	ErrLineNotFound          = errors.New("line not found in draft")
	ErrNumberExhausted       = errors.New("could not allocate a free loading order number, retry the submission")

	ErrDeliveryNotFound = errors.New("loading order not found")
	ErrConflict         = errors.New("loading order line already exists")
)
