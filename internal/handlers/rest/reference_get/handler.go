package reference_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"tracker/internal/dto"
	"tracker/internal/entities"
	"tracker/internal/handlers/rest/respond"
	"tracker/internal/service/reference"
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
	kind := entities.ReferenceKind(mux.Vars(r)["kind"])

	filter, err := parseFilter(r)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	items, err := h.service.ListReference(r.Context(), kind, filter)
	if err != nil {
		if errors.Is(err, reference.ErrUnknownKind) {
			respond.Error(w, h.log, http.StatusNotFound, err)
			return
		}
		h.log.With(
			logger.NewField("kind", kind.String()),
			logger.NewField("error", err),
		).Error("list reference")
		respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.Map(items, dto.FromReferenceItem))
}

// parseFilter departmentId для KPI, category для статусов, type для провайдеров.
func parseFilter(r *http.Request) (entities.ReferenceFilter, error) {
	var filter entities.ReferenceFilter

	if raw := respond.Query(r, "departmentId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entities.ReferenceFilter{}, respond.ErrInvalidQuery
		}
		filter.DepartmentID = &id
	}
	if category := respond.Query(r, "category"); category != "" {
		filter.Category = &category
	}
	if raw := respond.Query(r, "type"); raw != "" {
		t := entities.ProviderType(raw)
		filter.ProviderType = &t
	}
	return filter, nil
}
