package middlewares

import (
	"net/http"
	"strings"

	httperrors "github.com/dropDatabas3/postwall/internal/http/errors"
	"github.com/dropDatabas3/postwall/internal/observability/logger"
)

// TokenParser is satisfied by *jwt.Issuer.
type TokenParser interface {
	Parse(token string) (string, error)
}

// RequireAuth accepts "Authorization: Bearer <token>", stores the token
// subject as the caller's user id and answers 401 otherwise.
func RequireAuth(tokens TokenParser) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := strings.TrimSpace(r.Header.Get("Authorization"))
			if len(ah) < len("bearer ") || !strings.EqualFold(ah[:len("bearer ")], "bearer ") {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="missing bearer token"`)
				httperrors.WriteError(w, r, httperrors.ErrUnauthorized)
				return
			}

			sub, err := tokens.Parse(strings.TrimSpace(ah[len("bearer "):]))
			if err != nil {
				logger.From(r.Context()).Debug("bearer token rejected", logger.Layer("middleware"), logger.Err(err))
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				httperrors.WriteError(w, r, httperrors.ErrUnauthorized)
				return
			}

			ctx := WithUserID(r.Context(), sub)
			ctx = logger.ToContext(ctx, logger.From(ctx).With(logger.UserID(sub)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
