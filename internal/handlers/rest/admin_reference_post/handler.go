package admin_reference_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var body dto.ReferenceModify
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, respond.ErrInvalidBody)
		return
	}

	item, err := h.service.CreateReference(r.Context(), body.ToEntity(kind))
	if err != nil {
		switch {
		case errors.Is(err, reference.ErrUnknownKind):
			respond.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, reference.ErrMissingRequiredFields),
			errors.Is(err, reference.ErrInvalidProviderType),
			errors.Is(err, reference.ErrInvalidEmail),
			errors.Is(err, reference.ErrUnknownDepartment):
			respond.Error(w, h.log, http.StatusUnprocessableEntity, err)
		case errors.Is(err, reference.ErrConflict):
			respond.Error(w, h.log, http.StatusConflict, err)
		default:
			h.log.With(
				logger.NewField("kind", kind.String()),
				logger.NewField("error", err),
			).Error("create reference")
			respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		}
		return
	}

	h.log.With(
		logger.NewField("kind", kind.String()),
		logger.NewField("id", item.ID),
	).Info("reference created")

	respond.JSON(w, h.log, http.StatusCreated, dto.FromReferenceItem(*item))
}
