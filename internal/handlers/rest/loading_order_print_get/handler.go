package loading_order_print_get

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
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

// ServeHTTP печатная форма LO. Если склад не указан (?location=) и складов
// несколько, формы отдаются одним zip-архивом.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]
	location := respond.Query(r, "location")

	docs, err := h.service.PrintLoadingOrder(r.Context(), number, location)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		default:
			h.log.With(
				logger.NewField("number", number),
				logger.NewField("location", location),
				logger.NewField("error", err),
			).Error("print loading order")
			respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		}
		return
	}

	if len(docs) == 1 {
		respond.PDF(w, h.log, docs[0].Filename, docs[0].Content)
		return
	}

	archive, err := zipDocuments(docs)
	if err != nil {
		h.log.With(
			logger.NewField("number", number),
			logger.NewField("error", err),
		).Error("zip loading orders")
		respond.Error(w, h.log, http.StatusInternalServerError, respond.Message(http.StatusInternalServerError, err))
		return
	}
	respond.File(w, h.log, "application/zip", "loading_order_"+number+".zip", archive)
}

func zipDocuments(docs []delivery.Document) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, doc := range docs {
		f, err := zw.Create(doc.Filename)
		if err != nil {
			return nil, fmt.Errorf("zip entry %s: %w", doc.Filename, err)
		}
		if _, err := f.Write(doc.Content); err != nil {
			return nil, fmt.Errorf("zip entry %s: %w", doc.Filename, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return buf.Bytes(), nil
}
