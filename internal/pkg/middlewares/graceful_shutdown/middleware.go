package graceful_shutdown

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"

	"tracker/internal/handlers/rest/respond"
	"tracker/pkg/logger"
)

var ErrShuttingDown = errors.New("service is shutting down")

// Middleware после отмены ongoingCtx при выставленном флаге отвечает 503,
// чтобы балансировщик увёл трафик, пока дорабатывают начатые запросы.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				w.Header().Set("Connection", "close")
				w.Header().Set("Retry-After", "5")
				respond.Error(w, logger.Nop{}, http.StatusServiceUnavailable, ErrShuttingDown)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
