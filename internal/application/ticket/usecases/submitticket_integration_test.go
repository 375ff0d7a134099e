package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"turnero/internal/domain/ticket"
	"turnero/internal/infrastructure/persistence/models"
	"turnero/internal/infrastructure/persistence/testdb"
	"turnero/internal/infrastructure/repository"
	"turnero/internal/infrastructure/services"
	"turnero/internal/shared/config"
	"turnero/internal/shared/db"
	apperrors "turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
)

type fixedRandom int

func (f fixedRandom) IntBetween(min, max int) int { return int(f) }

type registry struct {
	db       *gorm.DB
	tickets  *repository.TicketRepository
	citizens *repository.CitizenRepository
	submit   *SubmitTicketUseCase
	lookup   *LookupPendingUseCase
}

func newRegistry(t *testing.T) *registry {
	t.Helper()
	gdb := testdb.Open(t)
	log := logger.NewNop()
	tickets := repository.NewTicketRepository(gdb, log)
	citizens := repository.NewCitizenRepository(gdb, log)
	allocator := services.NewSequenceAllocator(gdb, config.SequenceConfig{FallbackEnabled: true}, fixedRandom(9999), nil, log)

	return &registry{
		db:       gdb,
		tickets:  tickets,
		citizens: citizens,
		submit: NewSubmitTicketUseCase(db.NewTransactionManager(gdb), tickets, citizens, allocator,
			ReceiptCollaborators{}, nil, log),
		lookup: NewLookupPendingUseCase(tickets, citizens, log),
	}
}

func (r *registry) countTickets(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, r.db.Model(&models.TicketModel{}).Count(&n).Error)
	return n
}

func submission(nationalID, municipality, subject string) ticket.Submission {
	s := validSubmission()
	s.NationalID = nationalID
	s.Municipality = municipality
	s.Subject = subject
	return s
}

func TestTicketRegistry_SequentialNumbersAndDuplicates(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()

	first, err := r.submit.Execute(ctx, SubmitTicketCommand{Submission: submission("TEST123456HDFABC01", "aguascalientes", "inscripcion")})
	require.NoError(t, err)
	assert.Equal(t, "AGUASCALIENTES-0001", first.Number)

	_, err = r.submit.Execute(ctx, SubmitTicketCommand{Submission: submission("TEST123456HDFABC01", "aguascalientes", "inscripcion")})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	assert.Equal(t, "AGUASCALIENTES-0001", apperrors.GetAppError(err).Details)
	assert.Equal(t, int64(1), r.countTickets(t))

	second, err := r.submit.Execute(ctx, SubmitTicketCommand{Submission: submission("TEST123456HDFABC01", "aguascalientes", "certificacion")})
	require.NoError(t, err)
	assert.Equal(t, "AGUASCALIENTES-0002", second.Number)

	other, err := r.submit.Execute(ctx, SubmitTicketCommand{Submission: submission("ANAA900101MDFXYZ02", "calvillo", "inscripcion")})
	require.NoError(t, err)
	assert.Equal(t, "CALVILLO-0001", other.Number)
}

func TestTicketRegistry_MunicipalityCaseSharesPendingCheck(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()

	first, err := r.submit.Execute(ctx, SubmitTicketCommand{Submission: submission("TEST123456HDFABC01", "Saltillo", "inscripcion")})
	require.NoError(t, err)
	assert.Equal(t, "SALTILLO-0001", first.Number)
	assert.Equal(t, "saltillo", first.Municipality)

	_, err = r.submit.Execute(ctx, SubmitTicketCommand{Submission: submission("TEST123456HDFABC01", " saltillo ", "inscripcion")})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	assert.Equal(t, "SALTILLO-0001", apperrors.GetAppError(err).Details)
	assert.Equal(t, int64(1), r.countTickets(t))

	var municipalities []string
	require.NoError(t, r.db.Model(&models.TicketModel{}).Pluck("municipality", &municipalities).Error)
	assert.Equal(t, []string{"saltillo"}, municipalities)
}

func TestTicketRegistry_SubmitThenLookup(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()
	sub := submission("TEST123456HDFABC01", "aguascalientes", "inscripcion")

	created, err := r.submit.Execute(ctx, SubmitTicketCommand{Submission: sub})
	require.NoError(t, err)

	found, err := r.lookup.Execute(ctx, LookupPendingQuery{NationalID: sub.NationalID, Number: created.Number})
	require.NoError(t, err)
	assert.Equal(t, created.TicketID, found.ID)
	assert.Equal(t, "primaria", found.Level)
	assert.Equal(t, "aguascalientes", found.Municipality)
	assert.Equal(t, "inscripcion", found.Subject)
	assert.Equal(t, "pending", found.Status)
	require.NotNil(t, found.Citizen)
	assert.Equal(t, sub.FullName, found.Citizen.FullName)
	assert.Equal(t, sub.Mobile, found.Citizen.Mobile)
	assert.Equal(t, sub.Email, found.Citizen.Email)
}

func TestTicketRegistry_FallbackNumberOnSequenceFault(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, r.db.Migrator().DropTable(&models.TicketSequenceModel{}))

	result, err := r.submit.Execute(context.Background(), SubmitTicketCommand{Submission: submission("TEST123456HDFABC01", "test", "inscripcion")})
	require.NoError(t, err)
	assert.Equal(t, "TEST-9999", result.Number)

	stored, err := r.tickets.GetByNumber(context.Background(), "TEST-9999")
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestTicketRegistry_CollisionRollsBackEverything(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()
	require.NoError(t, r.db.Migrator().DropTable(&models.TicketSequenceModel{}))

	_, err := r.submit.Execute(ctx, SubmitTicketCommand{Submission: submission("TEST123456HDFABC01", "test", "inscripcion")})
	require.NoError(t, err)

	_, err = r.submit.Execute(ctx, SubmitTicketCommand{Submission: submission("ANAA900101MDFXYZ02", "test", "inscripcion")})
	require.Error(t, err)
	assert.True(t, apperrors.IsUniquenessCollisionError(err))

	newcomer, err := r.citizens.GetByNationalID(ctx, "ANAA900101MDFXYZ02")
	require.NoError(t, err)
	assert.Nil(t, newcomer, "citizen insert is rolled back with the ticket")
	assert.Equal(t, int64(1), r.countTickets(t))
}
