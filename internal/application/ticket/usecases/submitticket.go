package usecases

import (
	"context"
	stderrors "errors"

	"turnero/internal/application/ticket/dto"
	"turnero/internal/domain/citizen"
	"turnero/internal/domain/sequence"
	"turnero/internal/domain/ticket"
	"turnero/internal/infrastructure/email"
	"turnero/internal/infrastructure/receipt"
	"turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
	"turnero/internal/shared/utils"
)

// Submission outcomes reported to the SubmissionRecorder.
const (
	OutcomeCreated   = "created"
	OutcomeInvalid   = "invalid"
	OutcomeDuplicate = "duplicate"
	OutcomeCollision = "collision"
	OutcomeFailed    = "failed"
)

type SubmitTicketCommand struct {
	Submission ticket.Submission
	// RegisteredBy is set when an admin captures the request for the citizen.
	RegisteredBy uint
}

// ReceiptCollaborators renders, stores and mails the receipt after commit.
// Any of them may be nil.
type ReceiptCollaborators struct {
	Renderer ReceiptRenderer
	Store    ReceiptStore
	Mailer   ReceiptMailer
	// URLPrefix is joined with the stored file name to build the download link.
	URLPrefix string
}

type SubmitTicketUseCase struct {
	txManager   TransactionRunner
	ticketRepo  ticket.TicketRepository
	citizenRepo citizen.Repository
	allocator   sequence.Allocator
	receipts    ReceiptCollaborators
	recorder    SubmissionRecorder
	logger      logger.Interface
}

func NewSubmitTicketUseCase(
	txManager TransactionRunner,
	ticketRepo ticket.TicketRepository,
	citizenRepo citizen.Repository,
	allocator sequence.Allocator,
	receipts ReceiptCollaborators,
	recorder SubmissionRecorder,
	logger logger.Interface,
) *SubmitTicketUseCase {
	return &SubmitTicketUseCase{
		txManager:   txManager,
		ticketRepo:  ticketRepo,
		citizenRepo: citizenRepo,
		allocator:   allocator,
		receipts:    receipts,
		recorder:    recorder,
		logger:      logger,
	}
}

func (uc *SubmitTicketUseCase) Execute(ctx context.Context, cmd SubmitTicketCommand) (*dto.SubmitResultDTO, error) {
	sub := cmd.Submission
	sub.Normalize()

	if violations := sub.Validate(); !violations.IsEmpty() {
		uc.record("", OutcomeInvalid)
		return nil, errors.NewFieldValidationError("the submitted data is not valid", violations.Map())
	}

	var (
		created *ticket.Ticket
		owner   *citizen.Citizen
	)
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		owner, err = uc.resolveCitizen(txCtx, sub, cmd.RegisteredBy)
		if err != nil {
			return err
		}

		number, err := uc.allocator.Next(txCtx, sub.Municipality)
		if err != nil {
			return err
		}

		// Next holds the municipality's sequence row until commit, so a
		// concurrent submission for the same key has committed by now.
		pending, err := uc.ticketRepo.FindPendingForUpdate(txCtx, owner.ID(), sub.Municipality, sub.Subject)
		if err != nil {
			return err
		}
		if pending != nil {
			return pendingConflict(pending)
		}

		taken, err := uc.ticketRepo.ExistsByNumber(txCtx, number)
		if err != nil {
			return err
		}
		if taken {
			return errors.NewUniquenessCollisionError("the ticket number is already in use, please try again", number)
		}

		t, err := ticket.NewTicket(number, sub.Level, sub.Municipality, sub.Subject, owner.ID())
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.ticketRepo.Create(txCtx, t); err != nil {
			return err
		}
		created = t
		return nil
	})
	if err != nil {
		return nil, uc.fail(sub, err)
	}

	uc.logger.Infow("ticket submitted",
		"ticket_id", created.ID(),
		"number", created.Number(),
		"national_id", utils.MaskNationalID(owner.NationalID()),
		"municipality", created.Municipality(),
		"citizen_id", owner.ID(),
	)
	uc.record(sub.Municipality, OutcomeCreated)

	result := &dto.SubmitResultDTO{
		TicketID:     created.ID(),
		Number:       created.Number(),
		Status:       created.Status().String(),
		Municipality: created.Municipality(),
		Subject:      created.Subject(),
		FullName:     owner.FullName(),
		CreatedAt:    created.CreatedAt(),
	}
	uc.issueReceipt(created, owner, result)
	return result, nil
}

// resolveCitizen returns the registered citizen for the submission, creating
// one when the national ID is new. A pending ticket for the same municipality
// and subject is a conflict.
func (uc *SubmitTicketUseCase) resolveCitizen(ctx context.Context, sub ticket.Submission, registeredBy uint) (*citizen.Citizen, error) {
	existing, err := uc.citizenRepo.GetByNationalID(ctx, sub.NationalID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		pending, err := uc.ticketRepo.FindPending(ctx, existing.ID(), sub.Municipality, sub.Subject)
		if err != nil {
			return nil, err
		}
		if pending != nil {
			return nil, pendingConflict(pending)
		}
		return existing, nil
	}

	c, err := citizen.NewCitizen(citizen.Profile{
		NationalID:      sub.NationalID,
		FullName:        sub.FullName,
		FirstName:       sub.FirstName,
		PaternalSurname: sub.PaternalSurname,
		MaternalSurname: sub.MaternalSurname,
		Landline:        sub.Landline,
		Mobile:          sub.Mobile,
		Email:           sub.Email,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	c.SetRegisteredBy(registeredBy)

	if err := uc.citizenRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func pendingConflict(pending *ticket.Ticket) error {
	return errors.NewConflictError("you already have a pending ticket for this municipality and subject", pending.Number())
}

func (uc *SubmitTicketUseCase) fail(sub ticket.Submission, err error) error {
	switch {
	case errors.IsConflictError(err):
		uc.record(sub.Municipality, OutcomeDuplicate)
		uc.logger.Infow("duplicate pending ticket rejected",
			"national_id", utils.MaskNationalID(sub.NationalID),
			"municipality", sub.Municipality,
			"subject", sub.Subject,
			"error", err,
		)
		return err
	case errors.IsUniquenessCollisionError(err):
		uc.record(sub.Municipality, OutcomeCollision)
		uc.logger.Warnw("ticket number collision", "municipality", sub.Municipality, "error", err)
		return err
	case errors.IsAppError(err):
		uc.record(sub.Municipality, OutcomeFailed)
		uc.logger.Warnw("ticket submission rejected", "municipality", sub.Municipality, "error", err)
		return err
	}

	uc.record(sub.Municipality, OutcomeFailed)
	uc.logger.Errorw("failed to submit ticket", "municipality", sub.Municipality, "error", err)
	return errors.NewInternalError("could not register the ticket, please try again later")
}

// issueReceipt runs after commit. Failures are logged and never undo the ticket.
func (uc *SubmitTicketUseCase) issueReceipt(t *ticket.Ticket, owner *citizen.Citizen, result *dto.SubmitResultDTO) {
	if uc.receipts.Renderer == nil || uc.receipts.Store == nil {
		return
	}

	pdf, err := uc.receipts.Renderer.Render(receipt.Data{
		Number:       t.Number(),
		NationalID:   owner.NationalID(),
		FullName:     owner.FullName(),
		Level:        t.Level(),
		Municipality: t.Municipality(),
		Subject:      t.Subject(),
		IssuedAt:     t.CreatedAt(),
	})
	if err != nil {
		uc.receiptFailed(t, err)
		return
	}

	filename, err := uc.receipts.Store.Save(t.Number(), pdf)
	if err != nil {
		uc.receiptFailed(t, err)
		return
	}
	result.ReceiptURL = uc.receipts.URLPrefix + filename

	if uc.receipts.Mailer == nil || owner.Email() == "" {
		return
	}
	err = uc.receipts.Mailer.SendReceipt(email.ReceiptMail{
		To:           owner.Email(),
		FullName:     owner.FullName(),
		Number:       t.Number(),
		Municipality: t.Municipality(),
		Filename:     filename,
		PDF:          pdf,
	})
	switch {
	case err == nil:
		result.Emailed = true
	case stderrors.Is(err, email.ErrEmailDisabled):
	default:
		uc.logger.Warnw("failed to email receipt",
			"number", t.Number(),
			"to", utils.MaskEmail(owner.Email()),
			"error", err,
		)
	}
}

func (uc *SubmitTicketUseCase) receiptFailed(t *ticket.Ticket, err error) {
	uc.logger.Warnw("failed to produce receipt", "number", t.Number(), "error", err)
	if uc.recorder != nil {
		uc.recorder.RecordReceiptFailure()
	}
}

func (uc *SubmitTicketUseCase) record(municipality, outcome string) {
	if uc.recorder != nil {
		uc.recorder.RecordSubmission(sequence.Prefix(municipality), outcome)
	}
}
