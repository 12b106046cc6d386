package ticket_attachment_post

import (
	"errors"
	"net/http"

	"tracker/internal/dto"
	"tracker/internal/handlers/rest/respond"
	"tracker/internal/pkg/middlewares/actor"
	"tracker/internal/service/ticket"
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

// ServeHTTP загружает вложение до отправки мастера тикета; ответ кладётся
// клиентом в details.attachment черновика.
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

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	attachment, err := h.service.UploadAttachment(r.Context(), actorID, header.Filename, contentType, file)
	if err != nil {
		if errors.Is(err, ticket.ErrMissingRequiredFields) {
			respond.Error(w, h.log, http.StatusBadRequest, err)
			return
		}
		h.log.With(
			logger.NewField("filename", header.Filename),
			logger.NewField("error", err),
		).Error("upload ticket attachment")
		respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.FromAttachment(attachment))
}
