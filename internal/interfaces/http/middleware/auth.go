package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"turnero/internal/infrastructure/auth"
	"turnero/internal/shared/authorization"
	"turnero/internal/shared/logger"
	"turnero/internal/shared/utils"
)

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// RevocationChecker reports sessions closed by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

type AuthMiddleware struct {
	tokens   TokenVerifier
	sessions RevocationChecker
	logger   logger.Interface
}

func NewAuthMiddleware(tokens TokenVerifier, sessions RevocationChecker, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
	}
}

// RequireAuth rejects requests without a valid, unrevoked admin session.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetSessionToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		identity, status, message := m.authenticate(c, token)
		if identity == nil {
			utils.ErrorResponse(c, status, message)
			c.Abort()
			return
		}

		utils.SetIdentity(c, identity)
		c.Next()
	}
}

// OptionalAuth attaches the admin identity when a valid session is present.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := utils.GetSessionToken(c); token != "" {
			if identity, _, _ := m.authenticate(c, token); identity != nil {
				utils.SetIdentity(c, identity)
			}
		}
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context, token string) (*authorization.Identity, int, string) {
	claims, err := m.tokens.Verify(token)
	if err != nil {
		m.logger.Warnw("failed to verify token", "error", err, "client_ip", c.ClientIP())
		return nil, http.StatusUnauthorized, "invalid or expired token"
	}

	if !claims.Role.IsValid() {
		m.logger.Warnw("token carries unknown role", "admin_id", claims.AdminID, "role", claims.Role)
		return nil, http.StatusUnauthorized, "invalid or expired token"
	}

	revoked, err := m.sessions.IsRevoked(c.Request.Context(), claims.SessionID)
	if err != nil {
		m.logger.Errorw("failed to check session revocation", "error", err, "session_id", claims.SessionID)
		return nil, http.StatusInternalServerError, "could not verify session"
	}
	if revoked {
		return nil, http.StatusUnauthorized, "session has been closed"
	}

	identity := &authorization.Identity{
		AdminID:   claims.AdminID,
		Username:  claims.Username,
		Role:      claims.Role,
		SessionID: claims.SessionID,
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, http.StatusOK, ""
}
