package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"tracker/internal/pkg/middlewares/actor"
	"tracker/pkg/logger"
)

// quiet пробы, которые пишутся в лог только на Debug.
var quiet = map[string]bool{
	"/metrics":     true,
	"/healthcheck": true,
	"/ping":        true,
}

func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestsInFlight.Inc()
			defer requestsInFlight.Dec()

			start := time.Now()
			rec := &recorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			elapsed := time.Since(start)

			route := routeTemplate(r)
			status := strconv.Itoa(rec.status)
			requestDuration.WithLabelValues(r.Method, route, status).Observe(elapsed.Seconds())
			responseBytes.WithLabelValues(route).Add(float64(rec.written))

			fields := []logger.Field{
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("status", rec.status),
				logger.NewField("bytes", rec.written),
				logger.NewField("duration", elapsed.String()),
			}
			if id, ok := actor.FromContext(r.Context()); ok {
				fields = append(fields, logger.NewField("user_id", id))
			}

			entry := log.With(fields...)
			if quiet[route] {
				entry.Debug("HTTP request")
				return
			}
			entry.Info("HTTP request")
		})
	}
}

// routeTemplate шаблон маршрута mux, чтобы номера LTI и тикетов не
// раздували кардинальность метрик.
func routeTemplate(r *http.Request) string {
	if current := mux.CurrentRoute(r); current != nil {
		if tpl, err := current.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

type recorder struct {
	http.ResponseWriter
	status  int
	written int
}

func (rec *recorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *recorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.written += n
	return n, err
}
