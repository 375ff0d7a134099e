package ticket

import (
	"turnero/internal/application/ticket/usecases"
	"turnero/internal/domain/ticket"
)

// SubmitTicketRequest carries the citizen form. Field rules live in the
// domain so the citizen portal gets one error per field.
type SubmitTicketRequest struct {
	FullName        string `json:"full_name"`
	NationalID      string `json:"national_id"`
	FirstName       string `json:"first_name"`
	PaternalSurname string `json:"paternal_surname"`
	MaternalSurname string `json:"maternal_surname"`
	Landline        string `json:"landline"`
	Mobile          string `json:"mobile"`
	Email           string `json:"email"`
	Level           string `json:"level"`
	Municipality    string `json:"municipality"`
	Subject         string `json:"subject"`
}

func (r *SubmitTicketRequest) ToCommand(registeredBy uint) usecases.SubmitTicketCommand {
	return usecases.SubmitTicketCommand{
		Submission: ticket.Submission{
			FullName:        r.FullName,
			NationalID:      r.NationalID,
			FirstName:       r.FirstName,
			PaternalSurname: r.PaternalSurname,
			MaternalSurname: r.MaternalSurname,
			Landline:        r.Landline,
			Mobile:          r.Mobile,
			Email:           r.Email,
			Level:           r.Level,
			Municipality:    r.Municipality,
			Subject:         r.Subject,
		},
		RegisteredBy: registeredBy,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=20"`
}
