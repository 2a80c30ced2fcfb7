package middlewares

import (
	"fmt"
	"net/http"

	httperrors "github.com/dropDatabas3/postwall/internal/http/errors"
	"github.com/dropDatabas3/postwall/internal/observability/logger"
)

// WithRecover turns a panic into a 500 error envelope.
func WithRecover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.From(r.Context()).Error("panic recovered",
					logger.Op("recover"),
					logger.Any("panic", rec),
				)
				httperrors.WriteError(w, r, httperrors.Unexpected(fmt.Errorf("panic: %v", rec)))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
