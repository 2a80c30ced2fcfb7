// Package health reports whether the process can serve traffic.
package health

import (
	"context"
	"fmt"
	"time"

	dto "github.com/dropDatabas3/postwall/internal/http/dto/health"
	"github.com/dropDatabas3/postwall/internal/observability/logger"
)

const (
	StatusReady       = "ready"
	StatusDegraded    = "degraded"
	StatusUnavailable = "unavailable"
)

type HealthService interface {
	Check(ctx context.Context) dto.ReadinessResponse
}

// Deps: a failing StoreCheck makes the service unavailable, a failing
// CacheCheck only degrades it. A nil CacheCheck reports the cache disabled.
type Deps struct {
	Version    string
	StoreName  string
	StoreCheck func(ctx context.Context) error
	CacheCheck func(ctx context.Context) error
	Timeout    time.Duration
	now        func() time.Time
}

type healthService struct {
	deps Deps
}

func NewHealthService(d Deps) HealthService {
	if d.Timeout <= 0 {
		d.Timeout = 2 * time.Second
	}
	if d.now == nil {
		d.now = time.Now
	}
	return &healthService{deps: d}
}

func (s *healthService) Check(ctx context.Context) dto.ReadinessResponse {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("health"),
		logger.Op("Check"),
	)

	resp := dto.ReadinessResponse{
		Version:    s.deps.Version,
		Components: make(map[string]dto.ComponentStatus, 2),
		Timestamp:  s.deps.now().UTC(),
	}

	critical, degraded := false, false

	storeKey := "store"
	if s.deps.StoreName != "" {
		storeKey = "store_" + s.deps.StoreName
	}
	if s.deps.StoreCheck == nil {
		resp.Components[storeKey] = dto.ComponentStatus{Status: "error", Message: "store not initialized"}
		critical = true
	} else if err := s.probe(ctx, s.deps.StoreCheck); err != nil {
		resp.Components[storeKey] = dto.ComponentStatus{Status: "error", Message: fmt.Sprintf("unavailable: %v", err)}
		critical = true
		log.Error("store unavailable", logger.Err(err))
	} else {
		resp.Components[storeKey] = dto.ComponentStatus{Status: "ok"}
	}

	if s.deps.CacheCheck == nil {
		resp.Components["cache"] = dto.ComponentStatus{Status: "disabled"}
	} else if err := s.probe(ctx, s.deps.CacheCheck); err != nil {
		resp.Components["cache"] = dto.ComponentStatus{Status: "error", Message: fmt.Sprintf("unavailable: %v", err)}
		degraded = true
		log.Warn("cache unavailable", logger.Err(err))
	} else {
		resp.Components["cache"] = dto.ComponentStatus{Status: "ok"}
	}

	switch {
	case critical:
		resp.Status = StatusUnavailable
	case degraded:
		resp.Status = StatusDegraded
	default:
		resp.Status = StatusReady
	}
	return resp
}

func (s *healthService) probe(ctx context.Context, check func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.deps.Timeout)
	defer cancel()
	return check(ctx)
}
