package ticket_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tracker/internal/dto"
	"tracker/internal/handlers/rest/respond"
	"tracker/internal/pkg/middlewares/actor"
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
	actorID, ok := actor.FromContext(r.Context())
	if !ok {
		respond.Error(w, h.log, http.StatusUnauthorized, respond.ErrNoActor)
		return
	}
	number := mux.Vars(r)["number"]

	var body dto.TicketModify
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, respond.ErrInvalidBody)
		return
	}
	modify, err := body.ToEntity(number, actorID)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	updated, err := h.service.UpdateTicket(r.Context(), modify)
	if err != nil {
		switch {
		case errors.Is(err, ticket.ErrMissingRequiredFields),
			errors.Is(err, ticket.ErrInvalidPriority):
			respond.Error(w, h.log, http.StatusUnprocessableEntity, err)
		case errors.Is(err, ticket.ErrTicketNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, ticket.ErrConflict):
			respond.Error(w, h.log, http.StatusConflict, err)
		default:
			h.log.With(
				logger.NewField("ticket", number),
				logger.NewField("error", err),
			).Error("update ticket")
			respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromTicket(*updated))
}
