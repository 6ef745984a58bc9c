package middleware

import (
	"net/http"
	"strconv"
	"time"
)

// MetricsRecorder is the subset of the metrics registry the middleware
// needs.
type MetricsRecorder interface {
	RecordHTTPRequest(method, path, status string, duration time.Duration)
}

// InFlightGauge tracks requests currently being processed.
type InFlightGauge interface {
	Inc()
	Dec()
}

// statusResponseWriter wraps http.ResponseWriter to capture the status
// code.
type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// Metrics creates middleware that records request counts and latencies.
func Metrics(recorder MetricsRecorder, inFlight InFlightGauge) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if recorder == nil {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			if inFlight != nil {
				inFlight.Inc()
				defer inFlight.Dec()
			}

			wrapper := &statusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapper, r)

			recorder.RecordHTTPRequest(r.Method, r.URL.Path,
				strconv.Itoa(wrapper.statusCode), time.Since(start))
		})
	}
}
