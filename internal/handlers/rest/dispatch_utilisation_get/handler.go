package dispatch_utilisation_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tracker/internal/dto"
	"tracker/internal/handlers/rest/respond"
	"tracker/internal/service/delivery"
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

	usage, err := h.service.GetLineUtilisation(r.Context(), number)
	if err != nil {
		if errors.Is(err, delivery.ErrMissingRequiredFields) {
			respond.Error(w, h.log, http.StatusBadRequest, err)
			return
		}
		h.log.With(
			logger.NewField("number", number),
			logger.NewField("error", err),
		).Error("get line utilisation")
		respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.Map(usage, dto.FromLineUtilisation))
}
