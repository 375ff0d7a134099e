package usecases

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turnero/internal/domain/citizen"
	"turnero/internal/domain/ticket"
	vo "turnero/internal/domain/ticket/valueobjects"
	apperrors "turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
)

func TestLookupPendingUseCase(t *testing.T) {
	owner := newTestCitizen(t, 7, "TEST123456HDFABC01")
	tickets := map[string]*ticket.Ticket{
		"CALVILLO-0001": newTestTicket(t, 1, "CALVILLO-0001", vo.StatusPending, 7),
		"CALVILLO-0002": newTestTicket(t, 2, "CALVILLO-0002", vo.StatusResolved, 7),
	}
	uc := NewLookupPendingUseCase(
		&mockTicketRepository{
			GetByNumberFunc: func(ctx context.Context, number string) (*ticket.Ticket, error) {
				return tickets[number], nil
			},
		},
		&mockCitizenRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*citizen.Citizen, error) {
				return owner, nil
			},
		},
		logger.NewNop(),
	)

	t.Run("match", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), LookupPendingQuery{NationalID: "test123456hdfabc01", Number: " calvillo-0001 "})
		require.NoError(t, err)
		assert.Equal(t, "CALVILLO-0001", result.Number)
		require.NotNil(t, result.Citizen)
		assert.Equal(t, "Juan Perez Gomez", result.Citizen.FullName)
	})

	t.Run("wrong national id", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), LookupPendingQuery{NationalID: "ANAA900101MDFXYZ02", Number: "CALVILLO-0001"})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("not pending", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), LookupPendingQuery{NationalID: "TEST123456HDFABC01", Number: "CALVILLO-0002"})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("unknown number", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), LookupPendingQuery{NationalID: "TEST123456HDFABC01", Number: "CALVILLO-0404"})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), LookupPendingQuery{Number: "CALVILLO-0001"})
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestListTicketsUseCase(t *testing.T) {
	var got ticket.TicketFilter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
			got = filter
			return []*ticket.Ticket{
				newTestTicket(t, 2, "CALVILLO-0002", vo.StatusPending, 7),
				newTestTicket(t, 1, "CALVILLO-0001", vo.StatusPending, 7),
			}, nil
		},
	}
	var requestedIDs []uint
	citizens := &mockCitizenRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) (map[uint]*citizen.Citizen, error) {
			requestedIDs = ids
			return map[uint]*citizen.Citizen{7: newTestCitizen(t, 7, "TEST123456HDFABC01")}, nil
		},
	}
	uc := NewListTicketsUseCase(repo, citizens, 50, logger.NewNop())

	result, err := uc.Execute(context.Background(), ListTicketsQuery{Status: "pending", Municipality: " Calvillo ", Limit: 500})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "TEST123456HDFABC01", result[0].Citizen.NationalID)
	assert.Equal(t, []uint{7}, requestedIDs)

	assert.Equal(t, 50, got.Limit)
	assert.Equal(t, "calvillo", got.Municipality)
	require.NotNil(t, got.Status)
	assert.Equal(t, vo.StatusPending, *got.Status)

	_, err = uc.Execute(context.Background(), ListTicketsQuery{Status: "archived"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 50, clampLimit(0, 50))
	assert.Equal(t, 10, clampLimit(10, 50))
	assert.Equal(t, 50, clampLimit(51, 50))
	assert.Equal(t, 7, clampLimit(7, 0))
}

func TestQueryLogsMaskNationalID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLoggerWithSlog(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	owner := newTestCitizen(t, 7, "TEST123456HDFABC01")
	lookup := NewLookupPendingUseCase(
		&mockTicketRepository{
			GetByNumberFunc: func(ctx context.Context, number string) (*ticket.Ticket, error) {
				if number == "CALVILLO-0001" {
					return newTestTicket(t, 1, number, vo.StatusPending, 7), nil
				}
				return nil, errors.New("connection refused")
			},
		},
		&mockCitizenRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*citizen.Citizen, error) {
				return owner, nil
			},
		},
		log,
	)
	_, err := lookup.Execute(context.Background(), LookupPendingQuery{NationalID: "ANAA900101MDFXYZ02", Number: "CALVILLO-0001"})
	assert.True(t, apperrors.IsNotFoundError(err))
	_, err = lookup.Execute(context.Background(), LookupPendingQuery{NationalID: "ANAA900101MDFXYZ02", Number: "CALVILLO-0009"})
	assert.Error(t, err)

	search := NewSearchTicketsUseCase(&mockTicketRepository{
		SearchFunc: func(ctx context.Context, term string, limit int) ([]*ticket.Ticket, error) {
			return nil, errors.New("connection refused")
		},
	}, &mockCitizenRepository{}, 20, log)
	_, err = search.Execute(context.Background(), SearchTicketsQuery{Term: "ANAA900101MDFXYZ02"})
	assert.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "pending lookup owner mismatch")
	assert.Contains(t, out, "failed to look up ticket")
	assert.Contains(t, out, "failed to search tickets")
	assert.Contains(t, out, "ANAA************02")
	assert.NotContains(t, out, "ANAA900101MDFXYZ02")
}

func TestSearchTicketsUseCase(t *testing.T) {
	var gotTerm string
	var gotLimit int
	repo := &mockTicketRepository{
		SearchFunc: func(ctx context.Context, term string, limit int) ([]*ticket.Ticket, error) {
			gotTerm, gotLimit = term, limit
			return nil, nil
		},
	}
	uc := NewSearchTicketsUseCase(repo, &mockCitizenRepository{}, 20, logger.NewNop())

	result, err := uc.Execute(context.Background(), SearchTicketsQuery{Term: "  perez "})
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, "perez", gotTerm)
	assert.Equal(t, 20, gotLimit)

	_, err = uc.Execute(context.Background(), SearchTicketsQuery{Term: "  "})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestGetTicketUseCase(t *testing.T) {
	uc := NewGetTicketUseCase(
		&mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				if id == 1 {
					return newTestTicket(t, 1, "CALVILLO-0001", vo.StatusPending, 7), nil
				}
				return nil, nil
			},
		},
		&mockCitizenRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*citizen.Citizen, error) {
				return newTestCitizen(t, id, "TEST123456HDFABC01"), nil
			},
		},
		logger.NewNop(),
	)

	result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 1})
	require.NoError(t, err)
	assert.Equal(t, uint(7), result.Citizen.ID)

	_, err = uc.Execute(context.Background(), GetTicketQuery{TicketID: 2})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestDeleteTicketUseCase(t *testing.T) {
	uc := NewDeleteTicketUseCase(&mockTicketRepository{
		DeleteFunc: func(ctx context.Context, id uint) error {
			if id != 1 {
				return apperrors.NewNotFoundError("ticket not found")
			}
			return nil
		},
	}, logger.NewNop())

	require.NoError(t, uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 1, ActingAdminID: 3}))
	assert.True(t, apperrors.IsNotFoundError(uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 2})))
	assert.True(t, apperrors.IsValidationError(uc.Execute(context.Background(), DeleteTicketCommand{})))
}

func TestGetTicketStatsUseCase(t *testing.T) {
	uc := NewGetTicketStatsUseCase(&mockTicketRepository{
		StatsFunc: func(ctx context.Context) (*ticket.Stats, error) {
			return &ticket.Stats{
				Total:          3,
				ByStatus:       map[vo.TicketStatus]int64{vo.StatusPending: 2, vo.StatusResolved: 1},
				ByMunicipality: map[string]int64{"calvillo": 2, "asientos": 1},
			}, nil
		},
	}, logger.NewNop())

	stats, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.Pending)
	assert.Equal(t, int64(1), stats.Resolved)
	assert.Equal(t, 2, stats.Municipalities)
	assert.Equal(t, int64(0), stats.ByStatus["cancelled"])
}
