package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"turnero/internal/domain/citizen"
	"turnero/internal/domain/ticket"
	"turnero/internal/infrastructure/persistence/testdb"
	"turnero/internal/shared/logger"
)

func setupRepos(t *testing.T) (*gorm.DB, *TicketRepository, *CitizenRepository) {
	t.Helper()
	gdb := testdb.Open(t)
	return gdb, NewTicketRepository(gdb, logger.NewNop()), NewCitizenRepository(gdb, logger.NewNop())
}

func createCitizen(t *testing.T, repo *CitizenRepository, nationalID, fullName string) *citizen.Citizen {
	t.Helper()
	c, err := citizen.NewCitizen(citizen.Profile{
		NationalID:      nationalID,
		FullName:        fullName,
		FirstName:       "Juan",
		PaternalSurname: "Perez",
		Mobile:          "0987654321",
		Email:           "juan@example.com",
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func createTicket(t *testing.T, repo *TicketRepository, number, municipality, subject string, citizenID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(number, "primaria", municipality, subject, citizenID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), tk))
	return tk
}
