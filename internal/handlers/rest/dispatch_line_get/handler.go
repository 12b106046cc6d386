package dispatch_line_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tracker/internal/dto"
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
	vars := mux.Vars(r)

	line, err := h.service.GetDispatchLine(r.Context(), vars["number"], vars["line"])
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrMissingRequiredFields):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, dispatch.ErrDispatchNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		default:
			h.log.With(
				logger.NewField("number", vars["number"]),
				logger.NewField("line", vars["line"]),
				logger.NewField("error", err),
			).Error("get dispatch line")
			respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromDispatch(*line))
}
