package ticket

import (
	"html"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"turnero/internal/domain/sequence"
)

var (
	nationalIDPattern = regexp.MustCompile(`^[A-Z]{4}[0-9]{6}[HM][A-Z]{5}[0-9A-Z][0-9A-Z]$`)
	phonePattern      = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	gate     = newGateValidator()
	stripper = bluemonday.StrictPolicy()
)

// Submission is the citizen data sent with a ticket request.
type Submission struct {
	FullName        string `field:"full_name" validate:"required,max=200"`
	NationalID      string `field:"national_id" validate:"required,nationalid"`
	FirstName       string `field:"first_name" validate:"required,max=100"`
	PaternalSurname string `field:"paternal_surname" validate:"required,max=100"`
	MaternalSurname string `field:"maternal_surname" validate:"omitempty,max=100"`
	Landline        string `field:"landline" validate:"omitempty,phone10"`
	Mobile          string `field:"mobile" validate:"required,phone10"`
	Email           string `field:"email" validate:"required,emailtld,max=150"`
	Level           string `field:"level" validate:"required,max=50"`
	Municipality    string `field:"municipality" validate:"required,max=100"`
	Subject         string `field:"subject" validate:"required,max=100"`
}

// Normalize trims every field, strips markup from names, upper-cases the
// national ID and lower-cases the email. The municipality becomes its
// sequence key.
func (s *Submission) Normalize() {
	s.FullName = plainText(s.FullName)
	s.NationalID = strings.ToUpper(strings.TrimSpace(s.NationalID))
	s.FirstName = plainText(s.FirstName)
	s.PaternalSurname = plainText(s.PaternalSurname)
	s.MaternalSurname = plainText(s.MaternalSurname)
	s.Landline = strings.TrimSpace(s.Landline)
	s.Mobile = strings.TrimSpace(s.Mobile)
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.Level = strings.TrimSpace(s.Level)
	s.Municipality = sequence.MunicipalityKey(s.Municipality)
	s.Subject = strings.TrimSpace(s.Subject)
}

// Validate reports every violation at once. The receiver is not modified;
// checks run against a normalized copy.
func (s Submission) Validate() ValidationErrors {
	s.Normalize()

	var result ValidationErrors
	err := gate.Struct(s)
	if err == nil {
		return result
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return result
	}
	for _, fe := range fieldErrs {
		if ref := result.ref(fe.Field()); ref != nil && *ref == FieldValid {
			*ref = kindFor(fe.Tag())
		}
	}
	return result
}

func kindFor(tag string) FieldError {
	switch tag {
	case "required":
		return FieldMissing
	case "max":
		return FieldTooLong
	default:
		return FieldMalformed
	}
}

func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripper.Sanitize(strings.TrimSpace(s))))
}

func newGateValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("field")
	})
	_ = v.RegisterValidation("nationalid", matches(nationalIDPattern))
	_ = v.RegisterValidation("phone10", matches(phonePattern))
	_ = v.RegisterValidation("emailtld", matches(emailPattern))
	return v
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}
