package http

import (
	"gorm.io/gorm"

	"turnero/internal/domain/admin"
	"turnero/internal/domain/catalog"
	"turnero/internal/domain/citizen"
	"turnero/internal/domain/ticket"
	"turnero/internal/infrastructure/repository"
	"turnero/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	ticketRepo  ticket.TicketRepository
	citizenRepo citizen.Repository
	adminRepo   admin.Repository
	catalogRepo catalog.Repository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		ticketRepo:  repository.NewTicketRepository(db, log),
		citizenRepo: repository.NewCitizenRepository(db, log),
		adminRepo:   repository.NewAdminRepository(db, log),
		catalogRepo: repository.NewCatalogRepository(db),
	}
}
