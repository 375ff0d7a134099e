package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"turnero/internal/domain/citizen"
	"turnero/internal/domain/ticket"
	vo "turnero/internal/domain/ticket/valueobjects"
	"turnero/internal/infrastructure/email"
	"turnero/internal/infrastructure/receipt"
)

type mockTicketRepository struct {
	CreateFunc               func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc               func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc               func(ctx context.Context, ticketID uint) error
	GetByIDFunc              func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByNumberFunc          func(ctx context.Context, number string) (*ticket.Ticket, error)
	ExistsByNumberFunc       func(ctx context.Context, number string) (bool, error)
	FindPendingFunc          func(ctx context.Context, citizenID uint, municipality, subject string) (*ticket.Ticket, error)
	FindPendingForUpdateFunc func(ctx context.Context, citizenID uint, municipality, subject string) (*ticket.Ticket, error)
	ListFunc                 func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error)
	SearchFunc               func(ctx context.Context, term string, limit int) ([]*ticket.Ticket, error)
	StatsFunc                func(ctx context.Context) (*ticket.Stats, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	if m.ExistsByNumberFunc != nil {
		return m.ExistsByNumberFunc(ctx, number)
	}
	return false, nil
}

func (m *mockTicketRepository) FindPending(ctx context.Context, citizenID uint, municipality, subject string) (*ticket.Ticket, error) {
	if m.FindPendingFunc != nil {
		return m.FindPendingFunc(ctx, citizenID, municipality, subject)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindPendingForUpdate(ctx context.Context, citizenID uint, municipality, subject string) (*ticket.Ticket, error) {
	if m.FindPendingForUpdateFunc != nil {
		return m.FindPendingForUpdateFunc(ctx, citizenID, municipality, subject)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) Search(ctx context.Context, term string, limit int) ([]*ticket.Ticket, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, term, limit)
	}
	return nil, nil
}

func (m *mockTicketRepository) Stats(ctx context.Context) (*ticket.Stats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return &ticket.Stats{}, nil
}

type mockCitizenRepository struct {
	CreateFunc          func(ctx context.Context, c *citizen.Citizen) error
	UpdateFunc          func(ctx context.Context, c *citizen.Citizen) error
	DeleteFunc          func(ctx context.Context, id uint) error
	GetByIDFunc         func(ctx context.Context, id uint) (*citizen.Citizen, error)
	GetByNationalIDFunc func(ctx context.Context, nationalID string) (*citizen.Citizen, error)
	GetByIDsFunc        func(ctx context.Context, ids []uint) (map[uint]*citizen.Citizen, error)
	ListFunc            func(ctx context.Context, filter citizen.ListFilter) ([]*citizen.Citizen, int64, error)
}

func (m *mockCitizenRepository) Create(ctx context.Context, c *citizen.Citizen) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return c.SetID(7)
}

func (m *mockCitizenRepository) Update(ctx context.Context, c *citizen.Citizen) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCitizenRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCitizenRepository) GetByID(ctx context.Context, id uint) (*citizen.Citizen, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCitizenRepository) GetByNationalID(ctx context.Context, nationalID string) (*citizen.Citizen, error) {
	if m.GetByNationalIDFunc != nil {
		return m.GetByNationalIDFunc(ctx, nationalID)
	}
	return nil, nil
}

func (m *mockCitizenRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*citizen.Citizen, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return map[uint]*citizen.Citizen{}, nil
}

func (m *mockCitizenRepository) List(ctx context.Context, filter citizen.ListFilter) ([]*citizen.Citizen, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

// mockTxManager runs fn inline without a database.
type mockTxManager struct {
	calls int
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockAllocator struct {
	NextFunc func(ctx context.Context, municipality string) (string, error)
	calls    int
}

func (m *mockAllocator) Next(ctx context.Context, municipality string) (string, error) {
	m.calls++
	if m.NextFunc != nil {
		return m.NextFunc(ctx, municipality)
	}
	return "AGUASCALIENTES-0001", nil
}

type mockRenderer struct {
	err  error
	data []receipt.Data
}

func (m *mockRenderer) Render(d receipt.Data) ([]byte, error) {
	m.data = append(m.data, d)
	if m.err != nil {
		return nil, m.err
	}
	return []byte("%PDF-1.3"), nil
}

type mockStore struct {
	err   error
	saved map[string][]byte
}

func (m *mockStore) Save(number string, data []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.saved == nil {
		m.saved = make(map[string][]byte)
	}
	name := receipt.FilenameFor(number)
	m.saved[name] = data
	return name, nil
}

type mockMailer struct {
	err  error
	sent []email.ReceiptMail
}

func (m *mockMailer) SendReceipt(mail email.ReceiptMail) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, mail)
	return nil
}

type mockRecorder struct {
	submissions     map[string]int
	receiptFailures int
	statusChanges   map[string]int
}

func newMockRecorder() *mockRecorder {
	return &mockRecorder{submissions: map[string]int{}, statusChanges: map[string]int{}}
}

func (m *mockRecorder) RecordSubmission(municipality, outcome string) {
	m.submissions[municipality+"/"+outcome]++
}

func (m *mockRecorder) RecordReceiptFailure() {
	m.receiptFailures++
}

func (m *mockRecorder) RecordStatusChange(status string) {
	m.statusChanges[status]++
}

func validSubmission() ticket.Submission {
	return ticket.Submission{
		FullName:        "Juan Perez Gomez",
		NationalID:      "TEST123456HDFABC01",
		FirstName:       "Juan",
		PaternalSurname: "Perez",
		MaternalSurname: "Gomez",
		Mobile:          "0987654321",
		Email:           "juan@example.com",
		Level:           "primaria",
		Municipality:    "aguascalientes",
		Subject:         "inscripcion",
	}
}

func newTestCitizen(t *testing.T, id uint, nationalID string) *citizen.Citizen {
	t.Helper()
	c, err := citizen.ReconstructCitizen(id, citizen.Profile{
		NationalID:      nationalID,
		FullName:        "Juan Perez Gomez",
		FirstName:       "Juan",
		PaternalSurname: "Perez",
		Mobile:          "0987654321",
		Email:           "juan@example.com",
	}, nil, time.Now().Add(-time.Hour), time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return c
}

func newTestTicket(t *testing.T, id uint, number string, status vo.TicketStatus, citizenID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(id, number, "primaria", "aguascalientes", "inscripcion",
		status, citizenID, nil, nil, 1, time.Now().Add(-time.Hour), time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return tk
}
