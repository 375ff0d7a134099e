package usecases

import (
	"context"

	"turnero/internal/application/ticket/dto"
	"turnero/internal/domain/ticket"
	"turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
)

type GetTicketStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	stats, err := uc.ticketRepo.Stats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to compute ticket stats", "error", err)
		return nil, errors.NewInternalError("failed to compute ticket statistics")
	}
	return dto.ToStatsDTO(stats), nil
}
