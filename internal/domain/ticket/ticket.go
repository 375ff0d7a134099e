package ticket

import (
	"fmt"
	"time"

	vo "turnero/internal/domain/ticket/valueobjects"
	"turnero/internal/shared/biztime"
)

// Ticket is a citizen's turn for one subject at one municipality.
type Ticket struct {
	id           uint
	number       string
	level        string
	municipality string
	subject      string
	status       vo.TicketStatus
	citizenID    uint
	attendedBy   *uint
	attendedAt   *time.Time
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewTicket creates a pending ticket for an already minted number.
func NewTicket(number, level, municipality, subject string, citizenID uint) (*Ticket, error) {
	if number == "" {
		return nil, fmt.Errorf("ticket number is required")
	}
	if level == "" {
		return nil, fmt.Errorf("level is required")
	}
	if municipality == "" {
		return nil, fmt.Errorf("municipality is required")
	}
	if subject == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if citizenID == 0 {
		return nil, fmt.Errorf("citizen ID is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		number:       number,
		level:        level,
		municipality: municipality,
		subject:      subject,
		status:       vo.StatusPending,
		citizenID:    citizenID,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence.
func ReconstructTicket(
	id uint,
	number, level, municipality, subject string,
	status vo.TicketStatus,
	citizenID uint,
	attendedBy *uint,
	attendedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if number == "" {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:           id,
		number:       number,
		level:        level,
		municipality: municipality,
		subject:      subject,
		status:       status,
		citizenID:    citizenID,
		attendedBy:   attendedBy,
		attendedAt:   attendedAt,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) Number() string          { return t.number }
func (t *Ticket) Level() string           { return t.level }
func (t *Ticket) Municipality() string    { return t.municipality }
func (t *Ticket) Subject() string         { return t.subject }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) CitizenID() uint         { return t.citizenID }
func (t *Ticket) AttendedBy() *uint       { return t.attendedBy }
func (t *Ticket) AttendedAt() *time.Time  { return t.attendedAt }
func (t *Ticket) Version() int            { return t.version }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }
func (t *Ticket) IsPending() bool         { return t.status.IsPending() }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus moves a pending ticket to a final status. Entering attended or
// resolved records adminID and the current time.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus, adminID uint) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}
	if newStatus.StampsAttendance() && adminID == 0 {
		return fmt.Errorf("acting admin is required to mark a ticket %s", newStatus)
	}

	now := biztime.NowUTC()
	if newStatus.StampsAttendance() {
		by := adminID
		t.attendedBy = &by
		t.attendedAt = &now
	}

	t.status = newStatus
	t.updatedAt = now
	t.version++
	return nil
}
