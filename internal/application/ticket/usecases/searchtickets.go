package usecases

import (
	"context"
	"strings"

	"turnero/internal/application/ticket/dto"
	"turnero/internal/domain/citizen"
	"turnero/internal/domain/ticket"
	"turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
	"turnero/internal/shared/utils"
)

type SearchTicketsQuery struct {
	Term string
}

// SearchTicketsUseCase matches tickets by the owner's national ID or name.
type SearchTicketsUseCase struct {
	ticketRepo  ticket.TicketRepository
	citizenRepo citizen.Repository
	limit       int
	logger      logger.Interface
}

func NewSearchTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	citizenRepo citizen.Repository,
	limit int,
	logger logger.Interface,
) *SearchTicketsUseCase {
	return &SearchTicketsUseCase{
		ticketRepo:  ticketRepo,
		citizenRepo: citizenRepo,
		limit:       limit,
		logger:      logger,
	}
}

func (uc *SearchTicketsUseCase) Execute(ctx context.Context, query SearchTicketsQuery) ([]*dto.TicketDTO, error) {
	term := strings.TrimSpace(query.Term)
	if term == "" {
		return nil, errors.NewValidationError("search term is required")
	}

	list, err := uc.ticketRepo.Search(ctx, term, uc.limit)
	if err != nil {
		uc.logger.Errorw("failed to search tickets", "term", utils.MaskNationalID(term), "error", err)
		return nil, errors.NewInternalError("failed to search tickets")
	}

	return withOwners(ctx, uc.citizenRepo, list, uc.logger)
}
