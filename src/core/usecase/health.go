package usecase

import (
	"context"
	"log/slog"

	"jokebox/src/core/ports"
)

// HealthService handles health check logic.
type HealthService struct {
	log        *slog.Logger
	components map[string]ports.Repository
}

// NewHealthService creates a new HealthService checking the given components.
func NewHealthService(log *slog.Logger, components map[string]ports.Repository) *HealthService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
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

// Check performs a health check of all application components.
// The overall status is "degraded" if any component fails.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth, len(s.components)),
	}

	for name, c := range s.components {
		if err := c.Health(ctx); err != nil {
			s.log.Warn("health check failed", "component", name, "error", err)
			status.Status = "degraded"
			status.Components[name] = ComponentHealth{
				Status:  "unhealthy",
				Message: "unreachable",
			}
			continue
		}
		status.Components[name] = ComponentHealth{Status: "healthy"}
	}

	return status
}

// Healthy reports whether every component passed.
func (s *HealthService) Healthy(ctx context.Context) bool {
	return s.Check(ctx).Status == "ok"
}
