package http

import (
	"github.com/gin-gonic/gin"

	"turnero/internal/interfaces/http/middleware"
	"turnero/internal/interfaces/http/routes"
)

// SetupRoutes installs the global middleware chain and every route group.
func (c *Container) SetupRoutes() {
	r := c.engine

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(c.log))
	r.Use(middleware.Recovery(c.log))
	r.Use(middleware.ErrorHandler(c.log))
	r.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(c.metrics.GinMiddleware())

	routes.SetupSystemRoutes(r, &routes.SystemRouteConfig{
		SystemHandler:  c.hdlrs.systemHandler,
		ReceiptHandler: c.hdlrs.receiptHandler,
	})

	routes.SetupTicketRoutes(r, &routes.TicketRouteConfig{
		TicketHandler:        c.hdlrs.ticketHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
		SubmitLimiter:        c.submitLimiter,
	})

	routes.SetupCitizenRoutes(r, &routes.CitizenRouteConfig{
		CitizenHandler:       c.hdlrs.citizenHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupCatalogRoutes(r, &routes.CatalogRouteConfig{
		CatalogHandler:       c.hdlrs.catalogHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupAdminRoutes(r, &routes.AdminRouteConfig{
		AuthHandler:          c.hdlrs.authHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
		LoginLimiter:         c.loginLimiter,
	})
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Run starts the HTTP server on addr.
func (c *Container) Run(addr string) error {
	return c.engine.Run(addr)
}
