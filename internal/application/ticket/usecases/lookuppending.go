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

type LookupPendingQuery struct {
	NationalID string
	Number     string
}

// LookupPendingUseCase lets a citizen check a pending ticket by number. The
// national ID acts as the shared secret.
type LookupPendingUseCase struct {
	ticketRepo  ticket.TicketRepository
	citizenRepo citizen.Repository
	logger      logger.Interface
}

func NewLookupPendingUseCase(
	ticketRepo ticket.TicketRepository,
	citizenRepo citizen.Repository,
	logger logger.Interface,
) *LookupPendingUseCase {
	return &LookupPendingUseCase{
		ticketRepo:  ticketRepo,
		citizenRepo: citizenRepo,
		logger:      logger,
	}
}

func (uc *LookupPendingUseCase) Execute(ctx context.Context, query LookupPendingQuery) (*dto.TicketDTO, error) {
	nationalID := strings.ToUpper(strings.TrimSpace(query.NationalID))
	number := strings.ToUpper(strings.TrimSpace(query.Number))
	if nationalID == "" || number == "" {
		return nil, errors.NewValidationError("national ID and ticket number are required")
	}

	notFound := errors.NewNotFoundError("no pending ticket matches the given data")

	t, err := uc.ticketRepo.GetByNumber(ctx, number)
	if err != nil {
		uc.logger.Errorw("failed to look up ticket",
			"number", number,
			"national_id", utils.MaskNationalID(nationalID),
			"error", err,
		)
		return nil, errors.NewInternalError("failed to look up ticket")
	}
	if t == nil || !t.IsPending() {
		return nil, notFound
	}

	owner, err := uc.citizenRepo.GetByID(ctx, t.CitizenID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket owner", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to look up ticket")
	}
	if owner == nil || owner.NationalID() != nationalID {
		uc.logger.Debugw("pending lookup owner mismatch",
			"number", number,
			"national_id", utils.MaskNationalID(nationalID),
		)
		return nil, notFound
	}

	return dto.ToTicketDTO(t, owner), nil
}
