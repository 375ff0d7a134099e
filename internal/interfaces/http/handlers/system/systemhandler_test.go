package system

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"turnero/internal/infrastructure/metrics"
	_ "turnero/internal/interfaces/http/handlers/testutil"
	"turnero/internal/shared/logger"
)

func newRouter(checks []Check) (*gin.Engine, *metrics.Metrics) {
	m := metrics.New()
	h := NewSystemHandler(checks, m.Handler(), "test", logger.NewNop())
	r := gin.New()
	r.GET("/health", h.HealthCheck)
	r.GET("/metrics", h.Metrics)
	return r, m
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthCheck(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	r, _ := newRouter([]Check{{"database", ok}, {"redis", ok}})
	w := get(r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)

	r, _ = newRouter([]Check{{"database", ok}, {"redis", down}})
	w = get(r, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":"unavailable"`)
}

func TestMetricsEndpoint(t *testing.T) {
	r, m := newRouter(nil)
	m.RecordSubmission("AGUASCALIENTES", "created")

	w := get(r, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "turnero_")
}
