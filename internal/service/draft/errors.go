package draft

import "errors"

var (
	ErrDraftNotFound   = errors.New("draft not found")
	ErrUnknownKind     = errors.New("unknown wizard kind")
	ErrUnknownAction   = errors.New("unknown wizard action")
	ErrInvalidPatch    = errors.New("invalid draft patch")
	ErrInvalidArgs     = errors.New("invalid action arguments")
	ErrStepIncomplete  = errors.New("required fields are missing")
	ErrInvalidDraftTTL = errors.New("draft ttl must be positive")
)
