package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "turnero/internal/interfaces/http/handlers/ticket"
	"turnero/internal/interfaces/http/middleware"
	"turnero/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	// SubmitLimiter is nil when rate limiting is disabled.
	SubmitLimiter *middleware.RateLimiter
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	public := engine.Group("/api/tickets")
	{
		submit := []gin.HandlerFunc{config.AuthMiddleware.OptionalAuth()}
		if config.SubmitLimiter != nil {
			submit = append(submit, config.SubmitLimiter.Limit())
		}
		submit = append(submit, config.TicketHandler.SubmitTicket)

		public.POST("", submit...)
		public.GET("/pending", config.TicketHandler.LookupPending)
	}

	perm := config.PermissionMiddleware.RequirePermission

	admin := engine.Group("/api/admin")
	admin.Use(config.AuthMiddleware.RequireAuth())
	{
		admin.GET("/stats",
			perm(authorization.ResourceStats, authorization.ActionRead),
			config.TicketHandler.GetStats)

		// Static paths before /:id
		admin.GET("/tickets",
			perm(authorization.ResourceTicket, authorization.ActionRead),
			config.TicketHandler.ListTickets)
		admin.GET("/tickets/search",
			perm(authorization.ResourceTicket, authorization.ActionRead),
			config.TicketHandler.SearchTickets)

		admin.PATCH("/tickets/:id/status",
			perm(authorization.ResourceTicket, authorization.ActionUpdateStatus),
			config.TicketHandler.UpdateStatus)
		admin.GET("/tickets/:id",
			perm(authorization.ResourceTicket, authorization.ActionRead),
			config.TicketHandler.GetTicket)
		admin.DELETE("/tickets/:id",
			perm(authorization.ResourceTicket, authorization.ActionDelete),
			config.TicketHandler.DeleteTicket)
	}
}
