package admin_session_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"tracker/internal/dto"
	"tracker/internal/handlers/rest/respond"
	"tracker/internal/pkg/middlewares/actor"
	"tracker/internal/service/access"
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

// ServeHTTP обменивает ключ администратора на короткоживущий токен.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor.FromContext(r.Context())
	if !ok {
		respond.Error(w, h.log, http.StatusUnauthorized, respond.ErrNoActor)
		return
	}

	var body dto.SessionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4<<10)).Decode(&body); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, respond.ErrInvalidBody)
		return
	}

	session, err := h.service.OpenSession(actorID, body.Key)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrMissingRequiredFields):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, access.ErrInvalidKey):
			h.log.With(logger.NewField("actor", actorID)).Warn("admin key rejected")
			respond.Error(w, h.log, http.StatusUnauthorized, err)
		case errors.Is(err, access.ErrNotConfigured):
			respond.Error(w, h.log, http.StatusServiceUnavailable, err)
		default:
			h.log.With(
				logger.NewField("actor", actorID),
				logger.NewField("error", err),
			).Error("open admin session")
			respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		}
		return
	}

	h.log.With(logger.NewField("actor", actorID)).Info("admin session opened")

	respond.JSON(w, h.log, http.StatusOK, dto.Session{Token: session.Token, ExpiresAt: session.ExpiresAt})
}
