package usecase

import (
	"context"
	"log/slog"
	"time"

	"gamestore/src/core/ports"
)

const componentTimeout = 2 * time.Second

// HealthService reports the health of the storage components.
type HealthService struct {
	log        *slog.Logger
	components []ports.Component
}

// NewHealthService creates a new HealthService.
func NewHealthService(log *slog.Logger, components ...ports.Component) *HealthService {
	return &HealthService{
		log:        log,
		components: components,
	}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check pings every component. Overall status is "degraded" if any check fails;
// the cause is logged, not returned.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth, len(s.components)),
	}

	for _, c := range s.components {
		checkCtx, cancel := context.WithTimeout(ctx, componentTimeout)
		err := c.Checker.Health(checkCtx)
		cancel()

		if err != nil {
			status.Status = "degraded"
			status.Components[c.Name] = ComponentHealth{
				Status:  "unhealthy",
				Message: "unavailable",
			}
			s.log.Warn("health check failed", "component", c.Name, "error", err)
			continue
		}
		status.Components[c.Name] = ComponentHealth{Status: "healthy"}
	}

	return status
}
