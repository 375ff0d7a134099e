package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"turnero/internal/domain/ticket"
	vo "turnero/internal/domain/ticket/valueobjects"
	"turnero/internal/shared/db"
	apperrors "turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
)

func TestTicketRepository_CreateAndGet(t *testing.T) {
	_, tickets, citizens := setupRepos(t)
	ctx := context.Background()
	c := createCitizen(t, citizens, "TEST123456HDFABC01", "Juan Perez")

	tk := createTicket(t, tickets, "AGUASCALIENTES-0001", "aguascalientes", "inscripcion", c.ID())
	assert.NotZero(t, tk.ID())

	found, err := tickets.GetByNumber(ctx, "AGUASCALIENTES-0001")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, tk.ID(), found.ID())
	assert.Equal(t, vo.StatusPending, found.Status())
	assert.Equal(t, c.ID(), found.CitizenID())

	missing, err := tickets.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTicketRepository_DuplicateNumber(t *testing.T) {
	_, tickets, citizens := setupRepos(t)
	c := createCitizen(t, citizens, "TEST123456HDFABC01", "Juan Perez")
	createTicket(t, tickets, "TEST-9999", "test", "inscripcion", c.ID())

	dup, err := ticket.NewTicket("TEST-9999", "primaria", "test", "certificacion", c.ID())
	require.NoError(t, err)
	err = tickets.Create(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, apperrors.IsUniquenessCollisionError(err))

	exists, err := tickets.ExistsByNumber(context.Background(), "TEST-9999")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTicketRepository_FindPending(t *testing.T) {
	_, tickets, citizens := setupRepos(t)
	ctx := context.Background()
	c := createCitizen(t, citizens, "TEST123456HDFABC01", "Juan Perez")
	tk := createTicket(t, tickets, "CALVILLO-0001", "calvillo", "inscripcion", c.ID())

	found, err := tickets.FindPending(ctx, c.ID(), "calvillo", "inscripcion")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, tk.Number(), found.Number())

	other, err := tickets.FindPending(ctx, c.ID(), "calvillo", "certificacion")
	require.NoError(t, err)
	assert.Nil(t, other)

	require.NoError(t, found.ChangeStatus(vo.StatusResolved, 1))
	require.NoError(t, tickets.Update(ctx, found))

	after, err := tickets.FindPending(ctx, c.ID(), "calvillo", "inscripcion")
	require.NoError(t, err)
	assert.Nil(t, after)
}

func TestTicketRepository_FindPendingForUpdateInTransaction(t *testing.T) {
	gdb, tickets, citizens := setupRepos(t)
	c := createCitizen(t, citizens, "TEST123456HDFABC01", "Juan Perez")
	tk := createTicket(t, tickets, "CALVILLO-0001", "calvillo", "inscripcion", c.ID())

	err := db.NewTransactionManager(gdb).RunInTransaction(context.Background(), func(ctx context.Context) error {
		found, err := tickets.FindPendingForUpdate(ctx, c.ID(), "calvillo", "inscripcion")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, tk.ID(), found.ID())

		none, err := tickets.FindPendingForUpdate(ctx, c.ID(), "asientos", "inscripcion")
		require.NoError(t, err)
		assert.Nil(t, none)
		return nil
	})
	require.NoError(t, err)
}

func TestTicketRepository_FindPendingForUpdateLocksRow(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT \\* FROM `tickets` WHERE citizen_id = \\? AND municipality = \\? AND subject = \\? AND status = \\?.* FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	found, err := NewTicketRepository(gdb, logger.NewNop()).FindPendingForUpdate(context.Background(), 7, "calvillo", "inscripcion")
	require.NoError(t, err)
	assert.Nil(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketRepository_UpdateOptimisticLock(t *testing.T) {
	_, tickets, citizens := setupRepos(t)
	ctx := context.Background()
	c := createCitizen(t, citizens, "TEST123456HDFABC01", "Juan Perez")
	tk := createTicket(t, tickets, "CALVILLO-0001", "calvillo", "inscripcion", c.ID())

	first, err := tickets.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	second, err := tickets.GetByID(ctx, tk.ID())
	require.NoError(t, err)

	require.NoError(t, first.ChangeStatus(vo.StatusAttended, 3))
	require.NoError(t, tickets.Update(ctx, first))

	require.NoError(t, second.ChangeStatus(vo.StatusCancelled, 4))
	err = tickets.Update(ctx, second)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))

	stored, err := tickets.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusAttended, stored.Status())
	require.NotNil(t, stored.AttendedBy())
	assert.Equal(t, uint(3), *stored.AttendedBy())
	assert.NotNil(t, stored.AttendedAt())
}

func TestTicketRepository_Delete(t *testing.T) {
	_, tickets, citizens := setupRepos(t)
	ctx := context.Background()
	c := createCitizen(t, citizens, "TEST123456HDFABC01", "Juan Perez")
	tk := createTicket(t, tickets, "CALVILLO-0001", "calvillo", "inscripcion", c.ID())

	require.NoError(t, tickets.Delete(ctx, tk.ID()))
	err := tickets.Delete(ctx, tk.ID())
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestTicketRepository_ListFilters(t *testing.T) {
	_, tickets, citizens := setupRepos(t)
	ctx := context.Background()
	c := createCitizen(t, citizens, "TEST123456HDFABC01", "Juan Perez")
	createTicket(t, tickets, "CALVILLO-0001", "calvillo", "inscripcion", c.ID())
	createTicket(t, tickets, "CALVILLO-0002", "calvillo", "certificacion", c.ID())
	last := createTicket(t, tickets, "ASIENTOS-0001", "asientos", "inscripcion", c.ID())

	all, err := tickets.List(ctx, ticket.TicketFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, last.Number(), all[0].Number(), "newest first")

	byMunicipality, err := tickets.List(ctx, ticket.TicketFilter{Municipality: "calvillo"})
	require.NoError(t, err)
	assert.Len(t, byMunicipality, 2)

	limited, err := tickets.List(ctx, ticket.TicketFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	resolved := vo.StatusResolved
	none, err := tickets.List(ctx, ticket.TicketFilter{Status: &resolved})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTicketRepository_Search(t *testing.T) {
	_, tickets, citizens := setupRepos(t)
	ctx := context.Background()
	juan := createCitizen(t, citizens, "TEST123456HDFABC01", "Juan Perez")
	ana := createCitizen(t, citizens, "ANAA900101MDFXYZ02", "Ana 100% Lopez")
	createTicket(t, tickets, "CALVILLO-0001", "calvillo", "inscripcion", juan.ID())
	createTicket(t, tickets, "CALVILLO-0002", "calvillo", "inscripcion", ana.ID())

	byID, err := tickets.Search(ctx, "HDFABC", 20)
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "CALVILLO-0001", byID[0].Number())

	byName, err := tickets.Search(ctx, "100%", 20)
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "CALVILLO-0002", byName[0].Number())

	wildcard, err := tickets.Search(ctx, "%", 20)
	require.NoError(t, err)
	assert.Len(t, wildcard, 1, "percent is matched literally")
}

func TestTicketRepository_Stats(t *testing.T) {
	_, tickets, citizens := setupRepos(t)
	ctx := context.Background()
	c := createCitizen(t, citizens, "TEST123456HDFABC01", "Juan Perez")
	createTicket(t, tickets, "CALVILLO-0001", "calvillo", "inscripcion", c.ID())
	done := createTicket(t, tickets, "CALVILLO-0002", "calvillo", "certificacion", c.ID())
	createTicket(t, tickets, "ASIENTOS-0001", "asientos", "inscripcion", c.ID())

	require.NoError(t, done.ChangeStatus(vo.StatusResolved, 1))
	require.NoError(t, tickets.Update(ctx, done))

	stats, err := tickets.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.Pending())
	assert.Equal(t, int64(1), stats.Resolved())
	assert.Equal(t, 2, stats.Municipalities())
	assert.Equal(t, int64(2), stats.ByMunicipality["calvillo"])
	assert.Equal(t, int64(3), stats.CreatedToday)
}
