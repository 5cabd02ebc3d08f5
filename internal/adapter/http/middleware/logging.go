package middleware

import (
	"net/http"
	"time"

	wrap "github.com/Temutjin2k/rickshaw-analytics/pkg/logger/wrapper"
)

// Logging logs every request once it has been served. Server errors are logged at WARN.
func (m *Middleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := wrap.WithAction(r.Context(), "http_request")

		rw := &statusRecorder{
			ResponseWriter: w,
		}

		m.log.Debug(ctx, "started",
			"method", r.Method,
			"URL", r.URL.Path,
			"request-host", r.Host,
		)

		next.ServeHTTP(rw, r)

		args := []any{
			"method", r.Method,
			"URL", r.URL.Path,
			"status", rw.status,
			"duration", time.Since(start),
		}
		if rw.status >= http.StatusInternalServerError {
			m.log.Warn(ctx, "completed", args...)
			return
		}
		m.log.Debug(ctx, "completed", args...)
	})
}

// statusRecorder wraps http.ResponseWriter to track response status
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(status int) {
	rw.status = status
	rw.ResponseWriter.WriteHeader(status)
}

// Write defaults the status to 200 when WriteHeader was never called.
func (rw *statusRecorder) Write(b []byte) (int, error) {
	if rw.status == 0 {
		rw.status = http.StatusOK
	}
	return rw.ResponseWriter.Write(b)
}
