package tickets_get

import (
	"errors"
	"net/http"

	"tracker/internal/dto"
	"tracker/internal/entities"
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

	page, err := respond.Paging(r)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	scope := entities.TicketScope(respond.Query(r, "scope"))
	if scope == "" {
		scope = entities.TicketScopeMine
	}

	filter := entities.TicketFilter{
		Scope:    scope,
		Actor:    actorID,
		Status:   respond.Query(r, "status"),
		Priority: entities.TicketPriority(respond.Query(r, "priority")),
		Search:   respond.Query(r, "search"),
	}

	result, err := h.service.ListTickets(r.Context(), filter, page)
	if err != nil {
		if errors.Is(err, ticket.ErrInvalidScope) {
			respond.Error(w, h.log, http.StatusBadRequest, err)
			return
		}
		h.log.With(
			logger.NewField("scope", string(scope)),
			logger.NewField("error", err),
		).Error("list tickets")
		respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromPage(result, dto.FromTicketView))
}
