package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turnero/internal/shared/authorization"
	"turnero/internal/shared/logger"
	"turnero/internal/shared/utils"
)

// PermissionChecker answers role grants, backed by casbin in production.
type PermissionChecker interface {
	Enforce(role authorization.AdminRole, resource, action string) (bool, error)
}

type PermissionMiddleware struct {
	checker PermissionChecker
	logger  logger.Interface
}

func NewPermissionMiddleware(checker PermissionChecker, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		checker: checker,
		logger:  logger,
	}
}

// RequirePermission must run after RequireAuth.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := utils.GetIdentity(c)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "admin not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.checker.Enforce(identity.Role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "admin_id", identity.AdminID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "admin_id", identity.AdminID, "role", identity.Role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireRole admits only the listed roles, without consulting policies.
func (m *PermissionMiddleware) RequireRole(roles ...authorization.AdminRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := utils.GetIdentity(c)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "admin not authenticated")
			c.Abort()
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		m.logger.Warnw("role check failed", "admin_id", identity.AdminID, "role", identity.Role, "required_roles", roles)
		utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
		c.Abort()
	}
}
