package ticket

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDate           = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidPriority       = errors.New("invalid ticket priority")
	ErrInvalidReference      = errors.New("invalid reference id")
	ErrInvalidScope          = errors.New("invalid ticket scope")

	ErrTicketNotFound     = errors.New("ticket not found")
	ErrAttachmentNotFound = errors.New("ticket has no attachment")
	ErrConflict           = errors.New("ticket version already exists")
	ErrStoreUnavailable   = errors.New("store unavailable")
)
