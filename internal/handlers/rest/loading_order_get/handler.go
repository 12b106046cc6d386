package loading_order_get

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

	lines, err := h.service.GetLoadingOrder(r.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		default:
			h.log.With(
				logger.NewField("number", number),
				logger.NewField("error", err),
			).Error("get loading order")
			respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.Map(lines, dto.FromDelivery))
}
