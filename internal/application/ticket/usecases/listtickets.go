package usecases

import (
	"context"

	"turnero/internal/application/ticket/dto"
	"turnero/internal/domain/citizen"
	"turnero/internal/domain/sequence"
	"turnero/internal/domain/ticket"
	vo "turnero/internal/domain/ticket/valueobjects"
	"turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status       string
	Municipality string
	Limit        int
}

type ListTicketsUseCase struct {
	ticketRepo  ticket.TicketRepository
	citizenRepo citizen.Repository
	maxLimit    int
	logger      logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	citizenRepo citizen.Repository,
	maxLimit int,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo:  ticketRepo,
		citizenRepo: citizenRepo,
		maxLimit:    maxLimit,
		logger:      logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	filter := ticket.TicketFilter{
		Municipality: sequence.MunicipalityKey(query.Municipality),
		Limit:        clampLimit(query.Limit, uc.maxLimit),
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status", query.Status)
		}
		filter.Status = &status
	}

	list, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	return withOwners(ctx, uc.citizenRepo, list, uc.logger)
}

// clampLimit keeps requested below max, using max when nothing was asked for.
func clampLimit(requested, max int) int {
	if requested <= 0 || (max > 0 && requested > max) {
		return max
	}
	return requested
}

func withOwners(ctx context.Context, citizenRepo citizen.Repository, list []*ticket.Ticket, log logger.Interface) ([]*dto.TicketDTO, error) {
	ids := make([]uint, 0, len(list))
	seen := make(map[uint]struct{}, len(list))
	for _, t := range list {
		if _, ok := seen[t.CitizenID()]; ok {
			continue
		}
		seen[t.CitizenID()] = struct{}{}
		ids = append(ids, t.CitizenID())
	}

	owners, err := citizenRepo.GetByIDs(ctx, ids)
	if err != nil {
		log.Errorw("failed to load ticket owners", "error", err)
		return nil, errors.NewInternalError("failed to load ticket owners")
	}
	return dto.ToTicketDTOs(list, owners), nil
}
