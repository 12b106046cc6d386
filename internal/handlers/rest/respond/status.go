package respond

import (
	"errors"
	"net/http"

	"tracker/internal/service/delivery"
	"tracker/internal/service/dispatch"
	"tracker/internal/service/draft"
	"tracker/internal/service/reference"
	"tracker/internal/service/ticket"
	"tracker/internal/wizard"
)

// WizardStatus HTTP-статус для ошибок мастеров, включая ошибки отправки документа.
func WizardStatus(err error) int {
	switch {
	case errors.Is(err, draft.ErrUnknownKind),
		errors.Is(err, draft.ErrDraftNotFound),
		errors.Is(err, dispatch.ErrDispatchNotFound):
		return http.StatusNotFound
	case errors.Is(err, draft.ErrInvalidPatch),
		errors.Is(err, draft.ErrInvalidArgs),
		errors.Is(err, draft.ErrUnknownAction):
		return http.StatusBadRequest
	case errors.Is(err, draft.ErrStepIncomplete),
		errors.Is(err, dispatch.ErrMissingRequiredFields),
		errors.Is(err, dispatch.ErrInvalidDate),
		errors.Is(err, dispatch.ErrEmptyLines),
		errors.Is(err, dispatch.ErrLineNotFound),
		errors.Is(err, delivery.ErrMissingRequiredFields),
		errors.Is(err, delivery.ErrInvalidDate),
		errors.Is(err, delivery.ErrEmptyLines),
		errors.Is(err, delivery.ErrLineNotFound),
		errors.Is(err, ticket.ErrMissingRequiredFields),
		errors.Is(err, ticket.ErrInvalidDate),
		errors.Is(err, ticket.ErrInvalidPriority),
		errors.Is(err, ticket.ErrInvalidReference),
		errors.Is(err, reference.ErrReferenceNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, dispatch.ErrConflict),
		errors.Is(err, delivery.ErrConflict),
		errors.Is(err, ticket.ErrConflict),
		errors.Is(err, delivery.ErrNumberExhausted),
		errors.Is(err, wizard.ErrSubmitInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message текст ошибки для клиента; внутренние ошибки не раскрываются.
func Message(status int, err error) error {
	if status >= http.StatusInternalServerError {
		return errors.New(http.StatusText(status))
	}
	return err
}
