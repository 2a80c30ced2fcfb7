// Package health serves liveness and readiness probes.
package health

import (
	"net/http"

	"github.com/dropDatabas3/postwall/internal/http/helpers"
	svc "github.com/dropDatabas3/postwall/internal/http/services/health"
	"github.com/dropDatabas3/postwall/internal/observability/logger"
)

type HealthController struct {
	service svc.HealthService
}

func NewHealthController(service svc.HealthService) *HealthController {
	return &HealthController{service: service}
}

// Healthz handles GET /healthz. It only proves the process answers.
func (c *HealthController) Healthz(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz handles GET /readyz: 503 when the store is unreachable, 200
// otherwise, even when degraded.
func (c *HealthController) Readyz(w http.ResponseWriter, r *http.Request) {
	resp := c.service.Check(r.Context())

	status := http.StatusOK
	if resp.Status == svc.StatusUnavailable {
		status = http.StatusServiceUnavailable
	}
	if resp.Version != "" {
		w.Header().Set("X-Service-Version", resp.Version)
	}
	w.Header().Set("Cache-Control", "no-store")

	logger.From(r.Context()).Debug("readiness checked",
		logger.Layer("controller"),
		logger.String("status", resp.Status),
		logger.Count(len(resp.Components)),
	)
	helpers.WriteJSON(w, status, resp)
}
