package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turnero/internal/infrastructure/auth"
	"turnero/internal/infrastructure/cache"
	"turnero/internal/infrastructure/ratelimit"
	"turnero/internal/shared/authorization"
	"turnero/internal/shared/logger"
	"turnero/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubChecker struct {
	allowed bool
	err     error
	calls   []string
}

func (s *stubChecker) Enforce(role authorization.AdminRole, resource, action string) (bool, error) {
	s.calls = append(s.calls, role.String()+":"+resource+":"+action)
	return s.allowed, s.err
}

type authFixture struct {
	router   *gin.Engine
	jwt      *auth.JWTService
	sessions *cache.SessionStore
	mr       *miniredis.Miniredis
}

func newAuthFixture(t *testing.T, checker PermissionChecker) *authFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	jwtService := auth.NewJWTService("test-secret", 30)
	sessions := cache.NewSessionStore(client)
	authMW := NewAuthMiddleware(jwtService, sessions, logger.NewNop())
	permMW := NewPermissionMiddleware(checker, logger.NewNop())

	r := gin.New()
	r.GET("/me", authMW.RequireAuth(), func(c *gin.Context) {
		identity, err := utils.GetIdentity(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": identity.Username, "role": identity.Role})
	})
	r.DELETE("/tickets", authMW.RequireAuth(), permMW.RequirePermission("ticket", "delete"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/maybe", authMW.OptionalAuth(), func(c *gin.Context) {
		_, err := utils.GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": err == nil})
	})

	return &authFixture{router: r, jwt: jwtService, sessions: sessions, mr: mr}
}

func (f *authFixture) token(t *testing.T, role authorization.AdminRole) string {
	t.Helper()
	tok, err := f.jwt.Generate(4, "maria", role, "ses_abc")
	require.NoError(t, err)
	return tok.Token
}

func serve(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

func TestRequireAuth(t *testing.T) {
	f := newAuthFixture(t, &stubChecker{allowed: true})

	t.Run("missing token", func(t *testing.T) {
		w := serve(f.router, http.MethodGet, "/me", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := serve(f.router, http.MethodGet, "/me", bearer("not-a-jwt"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bearer token", func(t *testing.T) {
		w := serve(f.router, http.MethodGet, "/me", bearer(f.token(t, authorization.RoleOperator)))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"maria"`)
	})

	t.Run("session cookie", func(t *testing.T) {
		header := http.Header{"Cookie": []string{utils.SessionCookie + "=" + f.token(t, authorization.RoleAdmin)}}
		w := serve(f.router, http.MethodGet, "/me", header)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"admin"`)
	})

	t.Run("revoked session", func(t *testing.T) {
		token := f.token(t, authorization.RoleOperator)
		require.NoError(t, f.sessions.Revoke(context.Background(), "ses_abc", time.Hour))
		t.Cleanup(func() { f.mr.Del(cache.RevokedSessionPrefix + "ses_abc") })

		w := serve(f.router, http.MethodGet, "/me", bearer(token))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAuthRedisDown(t *testing.T) {
	f := newAuthFixture(t, &stubChecker{allowed: true})
	token := f.token(t, authorization.RoleOperator)
	f.mr.Close()

	w := serve(f.router, http.MethodGet, "/me", bearer(token))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestOptionalAuth(t *testing.T) {
	f := newAuthFixture(t, &stubChecker{allowed: true})

	w := serve(f.router, http.MethodGet, "/maybe", nil)
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())

	w = serve(f.router, http.MethodGet, "/maybe", bearer(f.token(t, authorization.RoleOperator)))
	assert.JSONEq(t, `{"authenticated":true}`, w.Body.String())
}

func TestRequirePermission(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		checker := &stubChecker{allowed: true}
		f := newAuthFixture(t, checker)
		w := serve(f.router, http.MethodDelete, "/tickets", bearer(f.token(t, authorization.RoleAdmin)))
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, []string{"admin:ticket:delete"}, checker.calls)
	})

	t.Run("denied", func(t *testing.T) {
		f := newAuthFixture(t, &stubChecker{allowed: false})
		w := serve(f.router, http.MethodDelete, "/tickets", bearer(f.token(t, authorization.RoleOperator)))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("enforcer failure", func(t *testing.T) {
		f := newAuthFixture(t, &stubChecker{err: errors.New("adapter down")})
		w := serve(f.router, http.MethodDelete, "/tickets", bearer(f.token(t, authorization.RoleAdmin)))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	permMW := NewPermissionMiddleware(&stubChecker{}, logger.NewNop())
	r := gin.New()
	r.GET("/admins", func(c *gin.Context) {
		utils.SetIdentity(c, &authorization.Identity{AdminID: 1, Role: authorization.RoleSupervisor})
		c.Next()
	}, permMW.RequireRole(authorization.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := serve(r, http.MethodGet, "/admins", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewRateLimiter(ratelimit.NewRedisRateLimiter(client), "submit", 2, logger.NewNop())
	r := gin.New()
	r.POST("/tickets", limiter.Limit(), func(c *gin.Context) { c.Status(http.StatusCreated) })

	assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/tickets", nil).Code)
	assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/tickets", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost, "/tickets", nil).Code)

	// Redis unavailable: requests go through.
	mr.Close()
	assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/tickets", nil).Code)
}

func TestRecoveryAndRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery(logger.NewNop()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := serve(r, http.MethodGet, "/boom", http.Header{"X-Request-Id": []string{"req_fixed"}})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "req_fixed", w.Header().Get("X-Request-ID"))

	w = serve(r, http.MethodGet, "/boom", nil)
	assert.Contains(t, w.Header().Get("X-Request-ID"), "req_")
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://turnos.example.gob.mx"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodGet, "/x", http.Header{"Origin": []string{"https://turnos.example.gob.mx"}})
	assert.Equal(t, "https://turnos.example.gob.mx", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodGet, "/x", http.Header{"Origin": []string{"https://evil.example"}})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodOptions, "/x", http.Header{"Origin": []string{"https://turnos.example.gob.mx"}})
	assert.Equal(t, http.StatusNoContent, w.Code)
}
