package middleware

import (
	"net/http"
	"time"

	"github.com/tracestep/tracestep/pkg/logging"
)

// Logging creates middleware that logs each request with its duration and
// request ID.
func Logging(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			logger.Info("http request",
				logging.String("request_id", GetRequestID(r)),
				logging.String("method", r.Method),
				logging.Path(r.URL.Path),
				logging.Latency(time.Since(start)),
			)
		})
	}
}
