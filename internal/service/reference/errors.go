package reference

import "errors"

var (
	ErrUnknownKind           = errors.New("unknown reference kind")
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidProviderType   = errors.New("invalid service provider type")
	ErrInvalidEmail          = errors.New("invalid email")

	ErrReferenceNotFound = errors.New("reference not found")
	ErrUnknownDepartment = errors.New("department does not exist")
	ErrConflict          = errors.New("reference already exists")
)
