package admin_performance_get

import (
	"net/http"

	"tracker/internal/dto"
	"tracker/internal/handlers/rest/respond"
	"tracker/pkg/logger"
)

// Handler сводка по исполнителям тикетов, только для администратора.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "admin_performance_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.PerformanceReport(r.Context())
	if err != nil {
		h.log.With(logger.NewField("error", err)).Error("performance report")
		respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromPerformanceReport(report))
}
