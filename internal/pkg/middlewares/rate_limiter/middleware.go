package rate_limiter

import (
	"errors"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"tracker/internal/handlers/rest/respond"
	"tracker/internal/pkg/middlewares/actor"
	"tracker/pkg/logger"
)

const maxRetryAfter = time.Minute

var ErrRateLimited = errors.New("rate limit exceeded, try again later")

// Middleware должен стоять после actor.Middleware, иначе все запросы
// считаются по адресу клиента.
func Middleware(log handlerLogger, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := limiterKey(r)
			allowed, wait := limiter.Allow(key)
			if allowed {
				next.ServeHTTP(w, r)
				return
			}

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			kind, _, _ := strings.Cut(key, ":")
			rejectedTotal.WithLabelValues(r.Method, route, kind).Inc()

			log.With(
				logger.NewField("route", route),
				logger.NewField("key", key),
				logger.NewField("retry_after", wait.String()),
			).Warn("rate limit exceeded")

			w.Header().Set("Retry-After", retryAfter(wait))
			respond.Error(w, log, http.StatusTooManyRequests, ErrRateLimited)
		})
	}
}

func limiterKey(r *http.Request) string {
	if id, ok := actor.FromContext(r.Context()); ok {
		return "user:" + id
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

// retryAfter в целых секундах, не меньше одной.
func retryAfter(wait time.Duration) string {
	wait = min(wait, maxRetryAfter)
	return strconv.Itoa(max(1, int(math.Ceil(wait.Seconds()))))
}
