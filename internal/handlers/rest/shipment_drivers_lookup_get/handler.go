package shipment_drivers_lookup_get

import (
	"context"
	"errors"
	"net/http"

	"tracker/internal/dto"
	"tracker/internal/entities"
	"tracker/internal/handlers/rest/respond"
	"tracker/internal/pkg/middlewares/actor"
	"tracker/pkg/debounce"
	"tracker/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	service  Service
	debounce *debounce.Group
}

func New(log handlerLogger, service Service, group *debounce.Group) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		service:  service,
		debounce: group,
	}
}

// ServeHTTP type-ahead по серийному номеру отгрузки. Запрос, который пользователь
// перебил следующим нажатием, получает 204 без тела.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actorID, _ := actor.FromContext(r.Context())
	fragment := respond.Query(r, "q")

	candidates, err := debounce.Do(r.Context(), h.debounce, "driver:"+actorID,
		func(ctx context.Context) ([]entities.ShipmentCandidate, error) {
			return h.service.SearchDrivers(ctx, fragment)
		})
	if err != nil {
		switch {
		case errors.Is(err, debounce.ErrSuperseded), errors.Is(err, context.Canceled):
			w.WriteHeader(http.StatusNoContent)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("search drivers")
			respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.Map(candidates, dto.FromShipmentCandidate))
}
