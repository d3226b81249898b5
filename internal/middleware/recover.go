// AngelaMos | 2026
// recover.go

package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/grocerly/backoffice/internal/core"
)

// Recoverer converts handler panics into a generic 500 response. The stack
// is logged server-side only; nothing leaks to the client.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				slog.Error("panic recovered",
					"request_id", GetRequestID(r.Context()),
					"panic", rec,
					"stack", string(debug.Stack()),
				)

				core.JSONError(w, core.NewAppError(
					http.StatusInternalServerError,
					"internal_error",
					"an unexpected error occurred",
				))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
