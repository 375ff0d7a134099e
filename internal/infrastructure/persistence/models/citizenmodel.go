package models

import "time"

type CitizenModel struct {
	ID              uint   `gorm:"primaryKey"`
	NationalID      string `gorm:"uniqueIndex;size:18;not null"`
	FullName        string `gorm:"size:200;not null;index"`
	FirstName       string `gorm:"size:100;not null"`
	PaternalSurname string `gorm:"size:100;not null"`
	MaternalSurname string `gorm:"size:100"`
	Landline        string `gorm:"size:10"`
	Mobile          string `gorm:"size:10;not null"`
	Email           string `gorm:"size:150;not null"`
	RegisteredBy    *uint
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (CitizenModel) TableName() string {
	return "citizens"
}
