// Package admin пропускает к админским маршрутам только с действующим токеном
// сессии, выданным POST /admin/session. Клиентский флаг доступа не учитывается.
package admin

import (
	"net/http"
	"strings"

	"tracker/internal/pkg/middlewares/actor"
	"tracker/pkg/logger"
)

func Middleware(log logger.Logger, authorizer Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := actor.FromContext(r.Context())
			token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || !found || token == "" {
				deny(w, http.StatusUnauthorized)
				return
			}

			if err := authorizer.Authorize(id, token); err != nil {
				log.With(
					logger.NewField("actor", id),
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Warn("admin access denied")
				deny(w, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func deny(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"admin access required"}`))
}
