package dispatches_report_get

import (
	"net/http"

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
	filter, err := respond.DispatchFilter(r)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	pdf, err := h.service.DispatchReport(r.Context(), filter)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("dispatch report")
		respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		return
	}

	respond.PDF(w, h.log, "lti_sto_report.pdf", pdf)
}
