package shipments_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var body dto.NewShipment
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, respond.ErrInvalidBody)
		return
	}

	created, err := h.service.CreateShipment(r.Context(), actorID, body.ToEntity())
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields),
			errors.Is(err, shipment.ErrEmptyLines):
			respond.Error(w, h.log, http.StatusUnprocessableEntity, err)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create shipment")
			respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		}
		return
	}

	if len(created) > 0 {
		w.Header().Set("Location", "/shipments/"+created[0].SerialNumber+"/history")
	}
	respond.JSON(w, h.log, http.StatusCreated, dto.Map(created, dto.FromShipmentUpdate))
}
