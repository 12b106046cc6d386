package dispatches_import_post

import (
	"errors"
	"net/http"

	"tracker/internal/dto"
	"tracker/internal/handlers/rest/respond"
	"tracker/internal/pkg/middlewares/actor"
	"tracker/internal/pkg/spreadsheet"
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

	file, header, err := respond.FormFile(w, r)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	result, err := h.service.ImportDispatches(r.Context(), actorID, file, header.Filename)
	if err != nil {
		switch {
		case errors.Is(err, spreadsheet.ErrUnsupportedFormat),
			errors.Is(err, spreadsheet.ErrEmpty):
			respond.Error(w, h.log, http.StatusUnprocessableEntity, err)
		default:
			h.log.With(
				logger.NewField("filename", header.Filename),
				logger.NewField("error", err),
			).Error("import dispatches")
			respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		}
		return
	}

	h.log.With(
		logger.NewField("actor", actorID),
		logger.NewField("uploaded", result.Uploaded),
		logger.NewField("skipped", result.Skipped),
		logger.NewField("rejected", len(result.Rejected)),
	).Info("dispatches imported")

	respond.JSON(w, h.log, http.StatusOK, dto.FromUploadResult(result))
}
