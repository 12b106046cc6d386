package loading_orders_get

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
	filter, err := respond.DeliveryFilter(r)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}
	page, err := respond.Paging(r)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	result, err := h.service.ListLoadingOrders(r.Context(), filter, page)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list loading orders")
		respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromPage(result, dto.FromDelivery))
}
