package usecases

import (
	"turnero/internal/domain/citizen"
	"turnero/internal/domain/ticket"
)

// validateProfile reuses the submission rules for the citizen fields of an
// update. Level, municipality and subject are filled with placeholders.
func validateProfile(p citizen.Profile) map[string]string {
	sub := ticket.Submission{
		FullName:        p.FullName,
		NationalID:      p.NationalID,
		FirstName:       p.FirstName,
		PaternalSurname: p.PaternalSurname,
		MaternalSurname: p.MaternalSurname,
		Landline:        p.Landline,
		Mobile:          p.Mobile,
		Email:           p.Email,
		Level:           "-",
		Municipality:    "-",
		Subject:         "-",
	}
	return sub.Validate().Map()
}

func normalizeProfile(p citizen.Profile) citizen.Profile {
	sub := ticket.Submission{
		FullName:        p.FullName,
		NationalID:      p.NationalID,
		FirstName:       p.FirstName,
		PaternalSurname: p.PaternalSurname,
		MaternalSurname: p.MaternalSurname,
		Landline:        p.Landline,
		Mobile:          p.Mobile,
		Email:           p.Email,
	}
	sub.Normalize()
	return citizen.Profile{
		NationalID:      sub.NationalID,
		FullName:        sub.FullName,
		FirstName:       sub.FirstName,
		PaternalSurname: sub.PaternalSurname,
		MaternalSurname: sub.MaternalSurname,
		Landline:        sub.Landline,
		Mobile:          sub.Mobile,
		Email:           sub.Email,
	}
}
