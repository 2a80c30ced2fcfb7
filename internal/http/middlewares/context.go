package middlewares

import "context"

type ctxKey string

const (
	ctxUserIDKey    ctxKey = "user_id"
	ctxRequestIDKey ctxKey = "request_id"
)

// WithUserID stores the authenticated caller's id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxUserIDKey, userID)
}

// GetUserID returns "" outside RequireAuth.
func GetUserID(ctx context.Context) string {
	s, _ := ctx.Value(ctxUserIDKey).(string)
	return s
}

func setRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey, id)
}

func GetRequestID(ctx context.Context) string {
	s, _ := ctx.Value(ctxRequestIDKey).(string)
	return s
}
