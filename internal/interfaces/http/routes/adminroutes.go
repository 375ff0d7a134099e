package routes

import (
	"github.com/gin-gonic/gin"

	adminhandlers "turnero/internal/interfaces/http/handlers/admin"
	"turnero/internal/interfaces/http/middleware"
	"turnero/internal/shared/authorization"
)

type AdminRouteConfig struct {
	AuthHandler          *adminhandlers.AuthHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	LoginLimiter         *middleware.RateLimiter
}

func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	session := engine.Group("/admin")
	{
		session.GET("/captcha", config.AuthHandler.GetCaptcha)

		login := []gin.HandlerFunc{config.AuthHandler.Login}
		if config.LoginLimiter != nil {
			login = append([]gin.HandlerFunc{config.LoginLimiter.Limit()}, login...)
		}
		session.POST("/login", login...)

		session.POST("/logout", config.AuthMiddleware.RequireAuth(), config.AuthHandler.Logout)
		session.GET("/me", config.AuthMiddleware.RequireAuth(), config.AuthHandler.Me)
	}

	engine.POST("/api/admin/admins",
		config.AuthMiddleware.RequireAuth(),
		config.PermissionMiddleware.RequireRole(authorization.RoleAdmin),
		config.PermissionMiddleware.RequirePermission(authorization.ResourceAdmin, authorization.ActionCreate),
		config.AuthHandler.CreateAdmin)
}
