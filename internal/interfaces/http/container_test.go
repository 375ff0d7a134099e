package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"turnero/internal/infrastructure/config"
	"turnero/internal/infrastructure/persistence/testdb"
	"turnero/internal/shared/authorization"
	sharedConfig "turnero/internal/shared/config"
	"turnero/internal/shared/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func newTestContainer(t *testing.T, mutate func(cfg *config.Config)) (*Container, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{
			BaseURL:        "http://turnos.test/",
			AllowedOrigins: []string{"http://panel.test"},
		},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: bcrypt.MinCost},
			JWT:      sharedConfig.JWTConfig{Secret: "test-secret", AccessExpMinutes: 30},
			Cookie:   sharedConfig.CookieConfig{Path: "/"},
			Captcha:  sharedConfig.CaptchaConfig{Length: 6, TTLSeconds: 60},
		},
		Redis:   sharedConfig.RedisConfig{Host: mr.Host(), Port: port},
		Ticket:  sharedConfig.TicketConfig{Sequence: sharedConfig.SequenceConfig{FallbackEnabled: true}},
		Receipt: sharedConfig.ReceiptConfig{Dir: t.TempDir(), Title: "Comprobante"},
		RateLimit: sharedConfig.RateLimitConfig{
			Enabled:         true,
			SubmitPerMinute: 5,
			LoginPerMinute:  5,
		},
	}
	if mutate != nil {
		mutate(cfg)
	}

	c, err := NewContainer(testdb.Open(t), cfg, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Shutdown(context.Background()) })

	c.SetupRoutes()
	return c, mr
}

func do(c *Container, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c.Engine().ServeHTTP(w, req)
	return w
}

func TestContainerHealthAndMetrics(t *testing.T) {
	c, _ := newTestContainer(t, nil)

	w := do(c, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(c, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "turnero_http_requests_total")
}

func TestContainerHealthReportsRedisOutage(t *testing.T) {
	c, mr := newTestContainer(t, nil)
	mr.Close()

	w := do(c, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestContainerSubmitAndLookup(t *testing.T) {
	c, _ := newTestContainer(t, nil)

	submission := map[string]string{
		"full_name":        "Juan Perez Gomez",
		"national_id":      "TEST123456HDFABC01",
		"first_name":       "Juan",
		"paternal_surname": "Perez",
		"maternal_surname": "Gomez",
		"mobile":           "0987654321",
		"email":            "juan@example.com",
		"level":            "primaria",
		"municipality":     "aguascalientes",
		"subject":          "inscripcion",
	}

	w := do(c, http.MethodPost, "/api/tickets", submission)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var result struct {
		Number     string `json:"number"`
		ReceiptURL string `json:"receipt_url"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	require.NotEmpty(t, result.Number)
	assert.True(t, strings.HasPrefix(result.ReceiptURL, "http://turnos.test/receipts/turno_"), result.ReceiptURL)

	w = do(c, http.MethodGet, "/api/tickets/pending?national_id=TEST123456HDFABC01&number="+result.Number, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	receiptPath := strings.TrimPrefix(result.ReceiptURL, "http://turnos.test")
	w = do(c, http.MethodGet, receiptPath, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))

	// A second pending request for the same citizen and subject is refused.
	w = do(c, http.MethodPost, "/api/tickets", submission)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestContainerAdminRoutesRequireSession(t *testing.T) {
	c, _ := newTestContainer(t, nil)

	for _, path := range []string{"/api/admin/tickets", "/api/admin/stats", "/api/admin/citizens", "/admin/me"} {
		w := do(c, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := do(c, http.MethodGet, "/admin/captcha", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContainerCreateAdminRequiresAdminRole(t *testing.T) {
	c, _ := newTestContainer(t, nil)

	// Even with a policy granting it, a supervisor cannot create accounts.
	require.NoError(t, c.enforcer.AddPolicy(authorization.RoleSupervisor, authorization.ResourceAdmin, authorization.ActionCreate))

	post := func(role authorization.AdminRole) *httptest.ResponseRecorder {
		token, err := c.jwtSvc.Generate(1, "panel", role, "session-"+role.String())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/admins", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token.Token)
		w := httptest.NewRecorder()
		c.Engine().ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusForbidden, post(authorization.RoleSupervisor).Code)
	assert.Equal(t, http.StatusForbidden, post(authorization.RoleOperator).Code)
	assert.NotEqual(t, http.StatusForbidden, post(authorization.RoleAdmin).Code)
}

func TestContainerSubmitRateLimit(t *testing.T) {
	c, _ := newTestContainer(t, func(cfg *config.Config) {
		cfg.RateLimit.SubmitPerMinute = 1
	})

	w := do(c, http.MethodPost, "/api/tickets", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(c, http.MethodPost, "/api/tickets", map[string]string{})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestContainerWithoutRateLimit(t *testing.T) {
	c, _ := newTestContainer(t, func(cfg *config.Config) {
		cfg.RateLimit.Enabled = false
	})
	assert.Nil(t, c.submitLimiter)
	assert.Nil(t, c.loginLimiter)
}

func TestContainerFailsWithoutRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	mr.Close()

	cfg := &config.Config{
		Redis:   sharedConfig.RedisConfig{Host: "127.0.0.1", Port: port},
		Receipt: sharedConfig.ReceiptConfig{Dir: t.TempDir()},
	}
	_, err = NewContainer(testdb.Open(t), cfg, logger.NewNop())
	assert.Error(t, err)
}

func TestReceiptURLPrefix(t *testing.T) {
	assert.Equal(t, "http://a.test/receipts/", receiptURLPrefix("http://a.test"))
	assert.Equal(t, "http://a.test/receipts/", receiptURLPrefix("http://a.test//"))
	assert.Equal(t, "/receipts/", receiptURLPrefix(""))
}
