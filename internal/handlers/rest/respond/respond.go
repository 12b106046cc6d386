// Package respond общие для REST-хендлеров ответы и разбор параметров запроса.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tracker/internal/dto"
	"tracker/pkg/logger"
	"tracker/pkg/paging"
)

var (
	ErrInvalidQuery = errors.New("invalid query parameter")
	ErrInvalidBody  = errors.New("invalid request body")
	ErrNoActor      = errors.New("missing X-User-ID header")
)

type errorLogger interface {
	With(fields ...logger.Field) logger.Logger
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func Error(w http.ResponseWriter, log errorLogger, status int, err error) {
	JSON(w, log, status, dto.Error{Error: err.Error()})
}

// File отдаёт файл на скачивание.
func File(w http.ResponseWriter, log errorLogger, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("filename", filename),
		).Error("write file response")
	}
}

func PDF(w http.ResponseWriter, log errorLogger, filename string, data []byte) {
	File(w, log, "application/pdf", filename, data)
}

// Paging ?page=&size=, отсутствующие значения берутся по умолчанию.
func Paging(r *http.Request) (paging.Request, error) {
	q := r.URL.Query()
	page, err := optionalInt(q.Get("page"))
	if err != nil {
		return paging.Request{}, fmt.Errorf("%w: page", ErrInvalidQuery)
	}
	size, err := optionalInt(q.Get("size"))
	if err != nil {
		return paging.Request{}, fmt.Errorf("%w: size", ErrInvalidQuery)
	}
	return paging.Request{Page: page, Size: size}.Normalize(), nil
}

// Date необязательный параметр в формате YYYY-MM-DD.
func Date(r *http.Request, key string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuery, key)
	}
	return &t, nil
}

func Query(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

func optionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
