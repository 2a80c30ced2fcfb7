package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/postwall/internal/metrics"
)

// WithMetrics records every request under its chi route pattern so that
// path parameters do not explode label cardinality.
func WithMetrics(m *metrics.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := m.RequestStarted(r.Method)
			rec := record(w)
			next.ServeHTTP(rec, r)

			route := ""
			if rc := chi.RouteContext(r.Context()); rc != nil {
				route = rc.RoutePattern()
			}
			done(route, rec.status)
		})
	}
}
