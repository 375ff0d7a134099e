package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusPending   TicketStatus = "pending"
	StatusAttended  TicketStatus = "attended"
	StatusResolved  TicketStatus = "resolved"
	StatusCancelled TicketStatus = "cancelled"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusPending:   true,
	StatusAttended:  true,
	StatusResolved:  true,
	StatusCancelled: true,
}

// Only a pending ticket can move, and nothing moves back to pending.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusPending: {
		StatusAttended,
		StatusResolved,
		StatusCancelled,
	},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	for _, allowed := range ticketStatusTransitions[ts] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// StampsAttendance reports whether entering this status records who attended the ticket and when.
func (ts TicketStatus) StampsAttendance() bool {
	return ts == StatusAttended || ts == StatusResolved
}

func (ts TicketStatus) IsPending() bool {
	return ts == StatusPending
}

func AllStatuses() []TicketStatus {
	return []TicketStatus{StatusPending, StatusAttended, StatusResolved, StatusCancelled}
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
