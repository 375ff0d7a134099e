package routes

import (
	"github.com/gin-gonic/gin"

	citizenhandlers "turnero/internal/interfaces/http/handlers/citizen"
	"turnero/internal/interfaces/http/middleware"
	"turnero/internal/shared/authorization"
)

type CitizenRouteConfig struct {
	CitizenHandler       *citizenhandlers.CitizenHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupCitizenRoutes(engine *gin.Engine, config *CitizenRouteConfig) {
	perm := config.PermissionMiddleware.RequirePermission

	citizens := engine.Group("/api/admin/citizens")
	citizens.Use(config.AuthMiddleware.RequireAuth())
	{
		citizens.GET("",
			perm(authorization.ResourceCitizen, authorization.ActionRead),
			config.CitizenHandler.ListCitizens)
		citizens.GET("/:id",
			perm(authorization.ResourceCitizen, authorization.ActionRead),
			config.CitizenHandler.GetCitizen)
		citizens.PUT("/:id",
			perm(authorization.ResourceCitizen, authorization.ActionUpdate),
			config.CitizenHandler.UpdateCitizen)
		citizens.DELETE("/:id",
			perm(authorization.ResourceCitizen, authorization.ActionDelete),
			config.CitizenHandler.DeleteCitizen)
	}
}
