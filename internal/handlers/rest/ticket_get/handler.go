package ticket_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tracker/internal/dto"
	"tracker/internal/handlers/rest/respond"
	"tracker/internal/service/ticket"
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

	details, err := h.service.Details(r.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, ticket.ErrTicketNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, ticket.ErrStoreUnavailable):
			h.log.With(
				logger.NewField("ticket", number),
				logger.NewField("error", err),
			).Warn("ticket store unavailable")
			w.Header().Set("Retry-After", "5")
			respond.Error(w, h.log, http.StatusServiceUnavailable, ticket.ErrStoreUnavailable)
		default:
			h.log.With(
				logger.NewField("ticket", number),
				logger.NewField("error", err),
			).Error("ticket details")
			respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromTicketDetails(details))
}
