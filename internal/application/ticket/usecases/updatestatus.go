package usecases

import (
	"context"
	"fmt"

	"turnero/internal/application/ticket/dto"
	"turnero/internal/domain/ticket"
	vo "turnero/internal/domain/ticket/valueobjects"
	"turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
)

type UpdateStatusCommand struct {
	TicketID      uint
	NewStatus     string
	ActingAdminID uint
}

type UpdateStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	recorder   StatusChangeRecorder
	logger     logger.Interface
}

func NewUpdateStatusUseCase(
	ticketRepo ticket.TicketRepository,
	recorder StatusChangeRecorder,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		ticketRepo: ticketRepo,
		recorder:   recorder,
		logger:     logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update status use case", "ticket_id", cmd.TicketID, "new_status", cmd.NewStatus)

	newStatus, err := uc.validateCommand(cmd)
	if err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	if t == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if !t.IsPending() {
		return nil, errors.NewConflictError("only pending tickets can change status", t.Status().String())
	}

	oldStatus := t.Status()
	if err := t.ChangeStatus(newStatus, cmd.ActingAdminID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	if uc.recorder != nil {
		uc.recorder.RecordStatusChange(newStatus.String())
	}
	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(),
		"old_status", oldStatus,
		"new_status", newStatus,
		"admin_id", cmd.ActingAdminID,
	)

	return dto.ToTicketDTO(t, nil), nil
}

func (uc *UpdateStatusUseCase) validateCommand(cmd UpdateStatusCommand) (vo.TicketStatus, error) {
	if cmd.TicketID == 0 {
		return "", errors.NewValidationError("ticket ID is required")
	}
	if cmd.ActingAdminID == 0 {
		return "", errors.NewValidationError("acting admin is required")
	}

	status, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return "", errors.NewValidationError("invalid status", cmd.NewStatus)
	}
	if status.IsPending() {
		return "", errors.NewValidationError("a ticket cannot be moved back to pending")
	}
	return status, nil
}
