package dispatch_print_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tracker/internal/handlers/rest/respond"
	"tracker/internal/service/dispatch"
	"tracker/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	pdf, err := h.service.PrintDispatch(r.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrMissingRequiredFields):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, dispatch.ErrDispatchNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		default:
			h.log.With(
				logger.NewField("number", number),
				logger.NewField("error", err),
			).Error("print dispatch")
			respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		}
		return
	}

	respond.PDF(w, h.log, "lti_"+number+".pdf", pdf)
}
