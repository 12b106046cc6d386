package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStatus         = errors.New("invalid shipment status")
	ErrEmptyLines            = errors.New("shipment has no lines")

	ErrShipmentNotFound = errors.New("shipment not found")
)
