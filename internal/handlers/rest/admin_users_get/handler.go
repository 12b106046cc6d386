package admin_users_get

import (
	"net/http"

	"tracker/internal/dto"
	"tracker/internal/handlers/rest/respond"
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
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.log.With(logger.NewField("error", err)).Error("list users")
		respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.Map(users, dto.FromUserProfile))
}
