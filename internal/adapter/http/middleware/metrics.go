package middleware

import (
	"net/http"
	"time"

	"github.com/Temutjin2k/rickshaw-analytics/pkg/metrics"
)

const unmatchedPath = "unmatched"

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Metrics middleware records HTTP metrics.
// It must wrap the mux directly so the matched route pattern is visible after serving.
func (m *Middleware) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip metrics endpoint to avoid recursion
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		metrics.HttpRequestsInFlight.WithLabelValues(m.service).Inc()
		defer metrics.HttpRequestsInFlight.WithLabelValues(m.service).Dec()

		// Wrap response writer to capture status code
		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // default status
		}

		next.ServeHTTP(rw, r)

		// label by route pattern to keep path cardinality bounded
		path := r.Pattern
		if path == "" {
			path = unmatchedPath
		}

		metrics.RecordHTTPMetrics(m.service, r.Method, path, rw.statusCode, time.Since(start))
	})
}
