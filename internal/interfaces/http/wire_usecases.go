package http

import (
	"strings"

	adminUsecases "turnero/internal/application/admin/usecases"
	catalogUsecases "turnero/internal/application/catalog/usecases"
	citizenUsecases "turnero/internal/application/citizen/usecases"
	ticketUsecases "turnero/internal/application/ticket/usecases"
	"turnero/internal/shared/db"
)

type allUseCases struct {
	// Ticket
	submitTicketUC  *ticketUsecases.SubmitTicketUseCase
	lookupPendingUC *ticketUsecases.LookupPendingUseCase
	listTicketsUC   *ticketUsecases.ListTicketsUseCase
	searchTicketsUC *ticketUsecases.SearchTicketsUseCase
	getTicketUC     *ticketUsecases.GetTicketUseCase
	updateStatusUC  *ticketUsecases.UpdateStatusUseCase
	deleteTicketUC  *ticketUsecases.DeleteTicketUseCase
	getStatsUC      *ticketUsecases.GetTicketStatsUseCase

	// Admin session
	issueCaptchaUC *adminUsecases.IssueCaptchaUseCase
	loginUC        *adminUsecases.LoginUseCase
	logoutUC       *adminUsecases.LogoutUseCase
	getAdminUC     *adminUsecases.GetAdminUseCase
	createAdminUC  *adminUsecases.CreateAdminUseCase

	citizenService *citizenUsecases.CitizenService
	catalogService *catalogUsecases.CatalogService
}

func newUseCases(c *Container) *allUseCases {
	cfg := c.cfg
	log := c.log
	r := c.repos

	receipts := ticketUsecases.ReceiptCollaborators{
		Renderer:  c.renderer,
		Store:     c.receipts,
		Mailer:    c.mailer,
		URLPrefix: receiptURLPrefix(cfg.Server.BaseURL),
	}

	return &allUseCases{
		submitTicketUC: ticketUsecases.NewSubmitTicketUseCase(
			db.NewTransactionManager(c.db), r.ticketRepo, r.citizenRepo, c.allocator, receipts, c.metrics, log,
		),
		lookupPendingUC: ticketUsecases.NewLookupPendingUseCase(r.ticketRepo, r.citizenRepo, log),
		listTicketsUC:   ticketUsecases.NewListTicketsUseCase(r.ticketRepo, r.citizenRepo, cfg.Ticket.ListLimit, log),
		searchTicketsUC: ticketUsecases.NewSearchTicketsUseCase(r.ticketRepo, r.citizenRepo, cfg.Ticket.SearchLimit, log),
		getTicketUC:     ticketUsecases.NewGetTicketUseCase(r.ticketRepo, r.citizenRepo, log),
		updateStatusUC:  ticketUsecases.NewUpdateStatusUseCase(r.ticketRepo, c.metrics, log),
		deleteTicketUC:  ticketUsecases.NewDeleteTicketUseCase(r.ticketRepo, log),
		getStatsUC:      ticketUsecases.NewGetTicketStatsUseCase(r.ticketRepo, log),

		issueCaptchaUC: adminUsecases.NewIssueCaptchaUseCase(c.captchas, cfg.Auth.Captcha.Length, log),
		loginUC:        adminUsecases.NewLoginUseCase(r.adminRepo, c.hasher, c.captchas, c.jwtSvc, log),
		logoutUC:       adminUsecases.NewLogoutUseCase(c.sessions, log),
		getAdminUC:     adminUsecases.NewGetAdminUseCase(r.adminRepo, log),
		createAdminUC:  adminUsecases.NewCreateAdminUseCase(r.adminRepo, c.hasher, log),

		citizenService: citizenUsecases.NewCitizenService(r.citizenRepo, log),
		catalogService: catalogUsecases.NewCatalogService(r.catalogRepo, log),
	}
}

func receiptURLPrefix(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/receipts/"
}
