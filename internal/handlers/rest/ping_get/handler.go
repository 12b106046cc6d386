package ping_get

import (
	"context"
	"net/http"
	"time"

	"tracker/internal/handlers/rest/respond"
	"tracker/pkg/logger"
)

const pingTimeout = 2 * time.Second

type response struct {
	Message  string `json:"message"`
	Database string `json:"database"`
}

type Handler struct {
	log handlerLogger
	db  Pinger
}

func New(log handlerLogger, db Pinger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
		db:  db,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.With(logger.NewField("error", err)).Warn("database ping failed")
		respond.JSON(w, h.log, http.StatusServiceUnavailable, response{Message: "pong", Database: "unavailable"})
		return
	}

	respond.JSON(w, h.log, http.StatusOK, response{Message: "pong", Database: "ok"})
}
