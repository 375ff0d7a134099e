package usecases

import (
	"context"

	"turnero/internal/application/ticket/dto"
	"turnero/internal/infrastructure/email"
	"turnero/internal/infrastructure/receipt"
)

type SubmitTicketExecutor interface {
	Execute(ctx context.Context, cmd SubmitTicketCommand) (*dto.SubmitResultDTO, error)
}

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.TicketDTO, error)
}

type LookupPendingExecutor interface {
	Execute(ctx context.Context, query LookupPendingQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error)
}

type SearchTicketsExecutor interface {
	Execute(ctx context.Context, query SearchTicketsQuery) ([]*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type GetTicketStatsExecutor interface {
	Execute(ctx context.Context) (*dto.StatsDTO, error)
}

// TransactionRunner runs fn in one database transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ReceiptRenderer interface {
	Render(data receipt.Data) ([]byte, error)
}

type ReceiptStore interface {
	Save(number string, data []byte) (string, error)
}

type ReceiptMailer interface {
	SendReceipt(mail email.ReceiptMail) error
}

type SubmissionRecorder interface {
	RecordSubmission(municipality, outcome string)
	RecordReceiptFailure()
}

type StatusChangeRecorder interface {
	RecordStatusChange(status string)
}
