package routes

import (
	"github.com/gin-gonic/gin"

	cataloghandlers "turnero/internal/interfaces/http/handlers/catalog"
	"turnero/internal/interfaces/http/middleware"
	"turnero/internal/shared/authorization"
)

type CatalogRouteConfig struct {
	CatalogHandler       *cataloghandlers.CatalogHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupCatalogRoutes(engine *gin.Engine, config *CatalogRouteConfig) {
	engine.GET("/api/catalogs/:kind", config.CatalogHandler.ListActive)

	perm := config.PermissionMiddleware.RequirePermission

	catalogs := engine.Group("/api/admin/catalogs")
	catalogs.Use(config.AuthMiddleware.RequireAuth())
	{
		catalogs.GET("/:kind",
			perm(authorization.ResourceCatalog, authorization.ActionRead),
			config.CatalogHandler.ListAll)
		catalogs.POST("/:kind",
			perm(authorization.ResourceCatalog, authorization.ActionWrite),
			config.CatalogHandler.CreateEntry)
		catalogs.PUT("/:kind/:id",
			perm(authorization.ResourceCatalog, authorization.ActionWrite),
			config.CatalogHandler.UpdateEntry)
		catalogs.DELETE("/:kind/:id",
			perm(authorization.ResourceCatalog, authorization.ActionWrite),
			config.CatalogHandler.DeleteEntry)
	}
}
