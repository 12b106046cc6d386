package ticket_attachment_get

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"tracker/internal/handlers/rest/respond"
	"tracker/internal/pkg/storage"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	file, attachment, err := h.service.OpenAttachment(r.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, ticket.ErrTicketNotFound),
			errors.Is(err, ticket.ErrAttachmentNotFound),
			errors.Is(err, storage.ErrNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		default:
			h.log.With(
				logger.NewField("ticket", number),
				logger.NewField("error", err),
			).Error("open ticket attachment")
			respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		}
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", attachment.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": attachment.Name}))
	if attachment.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(attachment.Size, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, file); err != nil {
		h.log.With(
			logger.NewField("ticket", number),
			logger.NewField("error", err),
		).Warn("stream ticket attachment")
	}
}
