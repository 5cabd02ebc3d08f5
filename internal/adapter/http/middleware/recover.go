package middleware

import (
	"fmt"
	"net/http"

	wrap "github.com/Temutjin2k/rickshaw-analytics/pkg/logger/wrapper"
)

func (app *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if panic := recover(); panic != nil {
				err := fmt.Errorf("%s", panic)
				app.log.Error(wrap.WithAction(r.Context(), "recover"), "panic while serving request", err, "URL", r.URL.Path)

				w.Header().Set("Connection", "close")
				errorResponse(w, http.StatusInternalServerError, err.Error())
			}
		}()

		next.ServeHTTP(w, r)
	})
}
