package citizen

import (
	"fmt"
	"time"

	"turnero/internal/shared/biztime"
)

// Citizen is a person identified by a national ID. One citizen may hold many
// tickets over time.
type Citizen struct {
	id              uint
	nationalID      string
	fullName        string
	firstName       string
	paternalSurname string
	maternalSurname string
	landline        string
	mobile          string
	email           string
	registeredBy    *uint
	createdAt       time.Time
	updatedAt       time.Time
}

// Profile carries the personal data of a citizen.
type Profile struct {
	NationalID      string
	FullName        string
	FirstName       string
	PaternalSurname string
	MaternalSurname string
	Landline        string
	Mobile          string
	Email           string
}

func NewCitizen(p Profile) (*Citizen, error) {
	if p.NationalID == "" {
		return nil, fmt.Errorf("national ID is required")
	}
	if p.FullName == "" {
		return nil, fmt.Errorf("full name is required")
	}

	now := biztime.NowUTC()
	c := &Citizen{nationalID: p.NationalID, createdAt: now, updatedAt: now}
	c.apply(p)
	return c, nil
}

func ReconstructCitizen(id uint, p Profile, registeredBy *uint, createdAt, updatedAt time.Time) (*Citizen, error) {
	if id == 0 {
		return nil, fmt.Errorf("citizen ID cannot be zero")
	}
	c := &Citizen{
		id:           id,
		nationalID:   p.NationalID,
		registeredBy: registeredBy,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
	c.apply(p)
	return c, nil
}

func (c *Citizen) apply(p Profile) {
	c.fullName = p.FullName
	c.firstName = p.FirstName
	c.paternalSurname = p.PaternalSurname
	c.maternalSurname = p.MaternalSurname
	c.landline = p.Landline
	c.mobile = p.Mobile
	c.email = p.Email
}

func (c *Citizen) ID() uint                { return c.id }
func (c *Citizen) NationalID() string      { return c.nationalID }
func (c *Citizen) FullName() string        { return c.fullName }
func (c *Citizen) FirstName() string       { return c.firstName }
func (c *Citizen) PaternalSurname() string { return c.paternalSurname }
func (c *Citizen) MaternalSurname() string { return c.maternalSurname }
func (c *Citizen) Landline() string        { return c.landline }
func (c *Citizen) Mobile() string          { return c.mobile }
func (c *Citizen) Email() string           { return c.email }
func (c *Citizen) RegisteredBy() *uint     { return c.registeredBy }
func (c *Citizen) CreatedAt() time.Time    { return c.createdAt }
func (c *Citizen) UpdatedAt() time.Time    { return c.updatedAt }

func (c *Citizen) Profile() Profile {
	return Profile{
		NationalID:      c.nationalID,
		FullName:        c.fullName,
		FirstName:       c.firstName,
		PaternalSurname: c.paternalSurname,
		MaternalSurname: c.maternalSurname,
		Landline:        c.landline,
		Mobile:          c.mobile,
		Email:           c.email,
	}
}

func (c *Citizen) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("citizen ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("citizen ID cannot be zero")
	}
	c.id = id
	return nil
}

// SetRegisteredBy records the admin who captured the citizen on their behalf.
func (c *Citizen) SetRegisteredBy(adminID uint) {
	if adminID == 0 {
		return
	}
	c.registeredBy = &adminID
}

// UpdateProfile replaces names and contact data. The national ID never changes.
func (c *Citizen) UpdateProfile(p Profile) error {
	if p.FullName == "" {
		return fmt.Errorf("full name is required")
	}
	p.NationalID = c.nationalID
	c.apply(p)
	c.updatedAt = biztime.NowUTC()
	return nil
}
