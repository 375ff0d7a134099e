package ticket

// FieldError is the kind of problem found with one submitted field.
type FieldError uint8

const (
	FieldValid FieldError = iota
	FieldMissing
	FieldMalformed
	FieldTooLong
)

// ValidationErrors holds one FieldError per submission field. The zero value
// means the submission is valid.
type ValidationErrors struct {
	FullName        FieldError
	NationalID      FieldError
	FirstName       FieldError
	PaternalSurname FieldError
	MaternalSurname FieldError
	Landline        FieldError
	Mobile          FieldError
	Email           FieldError
	Level           FieldError
	Municipality    FieldError
	Subject         FieldError
}

type fieldRef struct {
	name string
	kind *FieldError
}

func (v *ValidationErrors) fields() []fieldRef {
	return []fieldRef{
		{"full_name", &v.FullName},
		{"national_id", &v.NationalID},
		{"first_name", &v.FirstName},
		{"paternal_surname", &v.PaternalSurname},
		{"maternal_surname", &v.MaternalSurname},
		{"landline", &v.Landline},
		{"mobile", &v.Mobile},
		{"email", &v.Email},
		{"level", &v.Level},
		{"municipality", &v.Municipality},
		{"subject", &v.Subject},
	}
}

func (v *ValidationErrors) ref(name string) *FieldError {
	for _, f := range v.fields() {
		if f.name == name {
			return f.kind
		}
	}
	return nil
}

// IsEmpty reports whether no field has a problem.
func (v ValidationErrors) IsEmpty() bool {
	return v == ValidationErrors{}
}

// Map renders the problems as field name to message, omitting valid fields.
func (v ValidationErrors) Map() map[string]string {
	out := make(map[string]string)
	for _, f := range v.fields() {
		if *f.kind != FieldValid {
			out[f.name] = message(f.name, *f.kind)
		}
	}
	return out
}

func message(field string, kind FieldError) string {
	switch kind {
	case FieldMissing:
		return "This field is required"
	case FieldTooLong:
		return "Value is too long"
	}

	switch field {
	case "national_id":
		return "Invalid national ID format"
	case "landline", "mobile":
		return "Must contain exactly 10 digits"
	case "email":
		return "Invalid email address format"
	default:
		return "Invalid value"
	}
}
