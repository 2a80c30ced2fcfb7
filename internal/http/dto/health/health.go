package health

import "time"

type ComponentStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReadinessResponse is the body of GET /readyz. Status is "ready",
// "degraded" (an optional component failed) or "unavailable".
type ReadinessResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentStatus `json:"components"`
	Timestamp  time.Time                  `json:"timestamp"`
}
