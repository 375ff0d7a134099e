package dto

import (
	"time"

	citizendto "turnero/internal/application/citizen/dto"
	"turnero/internal/domain/citizen"
	"turnero/internal/domain/ticket"
	vo "turnero/internal/domain/ticket/valueobjects"
)

type TicketDTO struct {
	ID           uint                   `json:"id"`
	Number       string                 `json:"number"`
	Level        string                 `json:"level"`
	Municipality string                 `json:"municipality"`
	Subject      string                 `json:"subject"`
	Status       string                 `json:"status"`
	CitizenID    uint                   `json:"citizen_id"`
	AttendedBy   *uint                  `json:"attended_by,omitempty"`
	AttendedAt   *time.Time             `json:"attended_at,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
	Citizen      *citizendto.CitizenDTO `json:"citizen,omitempty"`
}

// SubmitResultDTO is returned to the citizen after a successful submission.
type SubmitResultDTO struct {
	TicketID     uint      `json:"ticket_id"`
	Number       string    `json:"number"`
	Status       string    `json:"status"`
	Municipality string    `json:"municipality"`
	Subject      string    `json:"subject"`
	FullName     string    `json:"full_name"`
	CreatedAt    time.Time `json:"created_at"`
	ReceiptURL   string    `json:"receipt_url,omitempty"`
	Emailed      bool      `json:"emailed"`
}

type StatsDTO struct {
	Total          int64            `json:"total"`
	Pending        int64            `json:"pending"`
	Resolved       int64            `json:"resolved"`
	Municipalities int              `json:"municipalities"`
	CreatedToday   int64            `json:"created_today"`
	ByStatus       map[string]int64 `json:"by_status"`
	ByMunicipality map[string]int64 `json:"by_municipality"`
}

// ToTicketDTO converts a ticket; owner may be nil.
func ToTicketDTO(t *ticket.Ticket, owner *citizen.Citizen) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:           t.ID(),
		Number:       t.Number(),
		Level:        t.Level(),
		Municipality: t.Municipality(),
		Subject:      t.Subject(),
		Status:       t.Status().String(),
		CitizenID:    t.CitizenID(),
		AttendedBy:   t.AttendedBy(),
		AttendedAt:   t.AttendedAt(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
		Citizen:      citizendto.ToCitizenDTO(owner),
	}
}

func ToTicketDTOs(list []*ticket.Ticket, owners map[uint]*citizen.Citizen) []*TicketDTO {
	out := make([]*TicketDTO, 0, len(list))
	for _, t := range list {
		out = append(out, ToTicketDTO(t, owners[t.CitizenID()]))
	}
	return out
}

func ToStatsDTO(s *ticket.Stats) *StatsDTO {
	byStatus := make(map[string]int64, len(vo.AllStatuses()))
	for _, status := range vo.AllStatuses() {
		byStatus[status.String()] = s.ByStatus[status]
	}
	byMunicipality := make(map[string]int64, len(s.ByMunicipality))
	for k, v := range s.ByMunicipality {
		byMunicipality[k] = v
	}
	return &StatsDTO{
		Total:          s.Total,
		Pending:        s.Pending(),
		Resolved:       s.Resolved(),
		Municipalities: s.Municipalities(),
		CreatedToday:   s.CreatedToday,
		ByStatus:       byStatus,
		ByMunicipality: byMunicipality,
	}
}
