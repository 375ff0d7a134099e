package models

import "time"

type TicketModel struct {
	ID           uint   `gorm:"primaryKey"`
	Number       string `gorm:"uniqueIndex;size:120;not null"`
	Level        string `gorm:"size:50;not null"`
	Municipality string `gorm:"size:100;not null;index:idx_ticket_pending_lookup,priority:2"`
	Subject      string `gorm:"size:100;not null;index:idx_ticket_pending_lookup,priority:3"`
	Status       string `gorm:"size:20;not null;index;index:idx_ticket_pending_lookup,priority:4"`
	CitizenID    uint   `gorm:"not null;index:idx_ticket_pending_lookup,priority:1"`
	AttendedBy   *uint
	AttendedAt   *time.Time
	Version      int       `gorm:"not null;default:1"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time

	// No foreign keys; citizen and admin links are kept by application logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

// TicketSequenceModel holds the last counter handed out for a municipality.
type TicketSequenceModel struct {
	ID           uint   `gorm:"primaryKey"`
	Municipality string `gorm:"uniqueIndex;size:100;not null"`
	NextNumber   int64  `gorm:"not null;default:1"`
	UpdatedAt    time.Time
}

func (TicketSequenceModel) TableName() string {
	return "ticket_sequences"
}
