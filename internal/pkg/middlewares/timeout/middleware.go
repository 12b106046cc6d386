package timeout

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Middleware ограничивает контекст запроса. Загрузка таблиц (multipart)
// и выгрузка PDF получают long: там разбор и рендер сотен строк.
func Middleware(regular, long time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limit := regular
			if long > regular && isLong(r) {
				limit = long
			}

			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isLong(r *http.Request) bool {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return true
	}
	return strings.HasSuffix(r.URL.Path, ".pdf")
}
