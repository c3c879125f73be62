package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/blaisecz/fitbit-sleep/internal/logger"
	"github.com/blaisecz/fitbit-sleep/pkg/problem"
)

// Recovery recovers from panics and returns a 500 error
func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error("panic recovered", "error", err, "path", r.URL.Path, "stack", string(debug.Stack()))
					problem.InternalError("An unexpected error occurred").Write(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
