package dto

import (
	"time"

	"turnero/internal/domain/admin"
)

type AdminDTO struct {
	ID           uint       `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	Role         string     `json:"role"`
	Active       bool       `json:"active"`
	LastAccessAt *time.Time `json:"last_access_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type CaptchaDTO struct {
	ID        string `json:"captcha_id"`
	Challenge string `json:"challenge"`
	ExpiresIn int64  `json:"expires_in"`
}

func ToAdminDTO(a *admin.Admin) *AdminDTO {
	if a == nil {
		return nil
	}
	return &AdminDTO{
		ID:           a.ID(),
		Username:     a.Username(),
		Email:        a.Email(),
		FullName:     a.FullName(),
		Role:         a.Role().String(),
		Active:       a.IsActive(),
		LastAccessAt: a.LastAccessAt(),
		CreatedAt:    a.CreatedAt(),
	}
}
