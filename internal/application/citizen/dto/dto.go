package dto

import (
	"time"

	"turnero/internal/domain/citizen"
)

type CitizenDTO struct {
	ID              uint      `json:"id"`
	NationalID      string    `json:"national_id"`
	FullName        string    `json:"full_name"`
	FirstName       string    `json:"first_name"`
	PaternalSurname string    `json:"paternal_surname"`
	MaternalSurname string    `json:"maternal_surname,omitempty"`
	Landline        string    `json:"landline,omitempty"`
	Mobile          string    `json:"mobile"`
	Email           string    `json:"email"`
	RegisteredBy    *uint     `json:"registered_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToCitizenDTO(c *citizen.Citizen) *CitizenDTO {
	if c == nil {
		return nil
	}
	return &CitizenDTO{
		ID:              c.ID(),
		NationalID:      c.NationalID(),
		FullName:        c.FullName(),
		FirstName:       c.FirstName(),
		PaternalSurname: c.PaternalSurname(),
		MaternalSurname: c.MaternalSurname(),
		Landline:        c.Landline(),
		Mobile:          c.Mobile(),
		Email:           c.Email(),
		RegisteredBy:    c.RegisteredBy(),
		CreatedAt:       c.CreatedAt(),
		UpdatedAt:       c.UpdatedAt(),
	}
}

func ToCitizenDTOs(list []*citizen.Citizen) []*CitizenDTO {
	out := make([]*CitizenDTO, 0, len(list))
	for _, c := range list {
		out = append(out, ToCitizenDTO(c))
	}
	return out
}
