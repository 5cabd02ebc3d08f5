package middleware

import (
	"net/http"

	"github.com/google/uuid"

	wrap "github.com/Temutjin2k/rickshaw-analytics/pkg/logger/wrapper"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses the incoming X-Request-ID or generates one, echoes it in the
// response and stores it in the log context.
func (m *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(wrap.WithRequestID(r.Context(), id)))
	})
}
