package ticket

import (
	"context"

	vo "turnero/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	// FindPending returns the pending ticket a citizen holds for a municipality and
	// subject, or nil when there is none.
	FindPending(ctx context.Context, citizenID uint, municipality, subject string) (*Ticket, error)
	// FindPendingForUpdate is FindPending as a locking read. Inside a
	// transaction it sees rows committed after the transaction began.
	FindPendingForUpdate(ctx context.Context, citizenID uint, municipality, subject string) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
	// Search matches the owner's national ID or full name by substring.
	Search(ctx context.Context, term string, limit int) ([]*Ticket, error)
	Stats(ctx context.Context) (*Stats, error)
}

// TicketFilter narrows admin listings. Results are ordered newest first.
type TicketFilter struct {
	Status       *vo.TicketStatus
	Municipality string
	CitizenID    *uint
	Limit        int
}

// Stats summarizes tickets for the admin dashboard.
type Stats struct {
	Total          int64
	ByStatus       map[vo.TicketStatus]int64
	ByMunicipality map[string]int64
	CreatedToday   int64
}

func (s *Stats) Pending() int64 {
	return s.ByStatus[vo.StatusPending]
}

func (s *Stats) Resolved() int64 {
	return s.ByStatus[vo.StatusResolved]
}

func (s *Stats) Municipalities() int {
	return len(s.ByMunicipality)
}
