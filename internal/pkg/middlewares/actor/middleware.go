// Package actor кладёт идентификатор пользователя из заголовка X-User-ID в контекст.
// Аутентификация выполняется внешним прокси, сервис доверяет заголовку.
package actor

import (
	"context"
	"net/http"
	"strings"
)

const Header = "X-User-ID"

type ctxKey struct{}

func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

func FromContext(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(ctxKey{}).(string)
	return actor, ok && actor != ""
}

func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(Header))
			if id == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"missing X-User-ID header"}`))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), id)))
		})
	}
}
