// Package system serves the operational endpoints: health and metrics.
package system

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"turnero/internal/shared/logger"
)

// Check probes one dependency.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

type SystemHandler struct {
	checks  []Check
	metrics http.Handler
	version string
	logger  logger.Interface
}

func NewSystemHandler(checks []Check, metrics http.Handler, version string, logger logger.Interface) *SystemHandler {
	return &SystemHandler{checks: checks, metrics: metrics, version: version, logger: logger}
}

// HealthCheck handles GET /health
func (h *SystemHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	components := make(map[string]string, len(h.checks))
	for _, check := range h.checks {
		if err := check.Probe(ctx); err != nil {
			h.logger.Warnw("health check failed", "component", check.Name, "error", err)
			components[check.Name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		components[check.Name] = "ok"
	}

	state := "healthy"
	if status != http.StatusOK {
		state = "degraded"
	}
	c.JSON(status, gin.H{
		"status":     state,
		"service":    "turnero",
		"version":    h.version,
		"components": components,
	})
}

// Metrics handles GET /metrics
func (h *SystemHandler) Metrics(c *gin.Context) {
	h.metrics.ServeHTTP(c.Writer, c.Request)
}
