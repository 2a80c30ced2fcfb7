package logger

import (
	"time"

	"go.uber.org/zap"
)

// ─────────────────────────────────────────────────────────────────────────────
// HTTP
// ─────────────────────────────────────────────────────────────────────────────

func RequestID(v string) zap.Field { return zap.String("request_id", v) }
func Method(v string) zap.Field    { return zap.String("method", v) }
func Path(v string) zap.Field      { return zap.String("path", v) }
func Status(v int) zap.Field       { return zap.Int("status", v) }
func Bytes(v int) zap.Field        { return zap.Int("bytes", v) }
func ClientIP(v string) zap.Field  { return zap.String("client_ip", v) }

// Duration registra la latencia del request en milisegundos.
func Duration(v time.Duration) zap.Field {
	return zap.Int64("duration_ms", v.Milliseconds())
}

// ─────────────────────────────────────────────────────────────────────────────
// DOMINIO
// ─────────────────────────────────────────────────────────────────────────────

func UserID(v string) zap.Field { return zap.String("user_id", v) }
func PostID(v string) zap.Field { return zap.String("post_id", v) }

// Email registra una dirección. Usar solo en debug o en fallas que un
// operador tenga que resolver; preferir util.MaskEmail.
func Email(v string) zap.Field { return zap.String("email", v) }

// ─────────────────────────────────────────────────────────────────────────────
// SISTEMA
// ─────────────────────────────────────────────────────────────────────────────

func Component(v string) zap.Field { return zap.String("component", v) }
func Op(v string) zap.Field        { return zap.String("op", v) }

// Layer es uno de: controller, service, repository, middleware.
func Layer(v string) zap.Field { return zap.String("layer", v) }
func Err(err error) zap.Field  { return zap.Error(err) }
func Count(v int) zap.Field    { return zap.Int("count", v) }
func String(key, v string) zap.Field {
	return zap.String(key, v)
}
func Any(key string, v any) zap.Field {
	return zap.Any(key, v)
}
