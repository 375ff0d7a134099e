package models

import "time"

type AdminModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:50;not null"`
	Email        string `gorm:"uniqueIndex;size:150;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	FullName     string `gorm:"size:200"`
	Role         string `gorm:"size:20;not null;default:operador"`
	Active       bool   `gorm:"not null"`
	LastAccessAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AdminModel) TableName() string {
	return "admins"
}
