package shipment_updates_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tracker/internal/dto"
	"tracker/internal/handlers/rest/respond"
	"tracker/internal/pkg/middlewares/actor"
	"tracker/internal/service/shipment"
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

	var body dto.ShipmentChange
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, respond.ErrInvalidBody)
		return
	}
	// серийный номер берётся из пути
	body.SerialNumber = mux.Vars(r)["serial"]

	appended, err := h.service.AppendUpdate(r.Context(), shipment.ChannelHTTP, body.ToEntity(actorID))
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields),
			errors.Is(err, shipment.ErrInvalidStatus):
			respond.Error(w, h.log, http.StatusUnprocessableEntity, err)
		case errors.Is(err, shipment.ErrShipmentNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		default:
			h.log.With(
				logger.NewField("serial", body.SerialNumber),
				logger.NewField("error", err),
			).Error("append shipment update")
			respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.Map(appended, dto.FromShipmentUpdate))
}
