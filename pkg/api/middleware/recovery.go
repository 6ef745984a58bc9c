package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/tracestep/tracestep/pkg/logging"
)

// PanicRecovery creates middleware that recovers from handler panics.
// The stack is logged; the client only sees a generic 500.
func PanicRecovery(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic in http handler",
						logging.String("request_id", GetRequestID(r)),
						logging.String("method", r.Method),
						logging.Path(r.URL.Path),
						logging.String("panic", string(debug.Stack())),
					)
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
