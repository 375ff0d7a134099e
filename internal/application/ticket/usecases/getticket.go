package usecases

import (
	"context"
	"fmt"

	"turnero/internal/application/ticket/dto"
	"turnero/internal/domain/citizen"
	"turnero/internal/domain/ticket"
	"turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	citizenRepo citizen.Repository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	citizenRepo citizen.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		citizenRepo: citizenRepo,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	if t == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	owner, err := uc.citizenRepo.GetByID(ctx, t.CitizenID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket owner", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}

	return dto.ToTicketDTO(t, owner), nil
}
