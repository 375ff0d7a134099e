package http

import (
	"context"

	adminHandlers "turnero/internal/interfaces/http/handlers/admin"
	catalogHandlers "turnero/internal/interfaces/http/handlers/catalog"
	citizenHandlers "turnero/internal/interfaces/http/handlers/citizen"
	receiptHandlers "turnero/internal/interfaces/http/handlers/receipt"
	systemHandlers "turnero/internal/interfaces/http/handlers/system"
	ticketHandlers "turnero/internal/interfaces/http/handlers/ticket"
	"turnero/internal/shared/version"
)

type allHandlers struct {
	ticketHandler  *ticketHandlers.TicketHandler
	citizenHandler *citizenHandlers.CitizenHandler
	catalogHandler *catalogHandlers.CatalogHandler
	authHandler    *adminHandlers.AuthHandler
	receiptHandler *receiptHandlers.ReceiptHandler
	systemHandler  *systemHandlers.SystemHandler
}

func newHandlers(c *Container) *allHandlers {
	u := c.ucs

	return &allHandlers{
		ticketHandler: ticketHandlers.NewTicketHandler(
			u.submitTicketUC,
			u.lookupPendingUC,
			u.listTicketsUC,
			u.searchTicketsUC,
			u.getTicketUC,
			u.updateStatusUC,
			u.deleteTicketUC,
			u.getStatsUC,
			c.cfg.Ticket.ListLimit,
			c.log,
		),
		citizenHandler: citizenHandlers.NewCitizenHandler(u.citizenService, c.log),
		catalogHandler: catalogHandlers.NewCatalogHandler(u.catalogService, c.log),
		authHandler: adminHandlers.NewAuthHandler(
			u.issueCaptchaUC,
			u.loginUC,
			u.logoutUC,
			u.getAdminUC,
			u.createAdminUC,
			c.cfg.Auth.Cookie,
			c.log,
		),
		receiptHandler: receiptHandlers.NewReceiptHandler(c.receipts, c.log),
		systemHandler:  systemHandlers.NewSystemHandler(c.healthChecks(), c.metrics.Handler(), version.String(), c.log),
	}
}

func (c *Container) healthChecks() []systemHandlers.Check {
	return []systemHandlers.Check{
		{
			Name: "database",
			Probe: func(ctx context.Context) error {
				sqlDB, err := c.db.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			},
		},
		{
			Name: "redis",
			Probe: func(ctx context.Context) error {
				return c.redis.Ping(ctx).Err()
			},
		},
	}
}
