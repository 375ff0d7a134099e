package admin

import (
	"fmt"
	"strings"
	"time"

	"turnero/internal/shared/authorization"
	"turnero/internal/shared/biztime"
)

// PasswordHasher hashes and checks admin passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

const minPasswordLength = 8

// Admin is a staff account allowed into the dashboard.
type Admin struct {
	id           uint
	username     string
	email        string
	passwordHash string
	fullName     string
	role         authorization.AdminRole
	active       bool
	lastAccessAt *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAdmin(username, email, fullName string, role authorization.AdminRole) (*Admin, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return nil, fmt.Errorf("username must be at least 3 characters")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &Admin{
		username:  username,
		email:     strings.ToLower(strings.TrimSpace(email)),
		fullName:  strings.TrimSpace(fullName),
		role:      role,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAdmin(
	id uint,
	username, email, passwordHash, fullName string,
	role authorization.AdminRole,
	active bool,
	lastAccessAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Admin, error) {
	if id == 0 {
		return nil, fmt.Errorf("admin ID cannot be zero")
	}
	return &Admin{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		fullName:     fullName,
		role:         authorization.ParseAdminRole(string(role)),
		active:       active,
		lastAccessAt: lastAccessAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *Admin) ID() uint                      { return a.id }
func (a *Admin) Username() string              { return a.username }
func (a *Admin) Email() string                 { return a.email }
func (a *Admin) PasswordHash() string          { return a.passwordHash }
func (a *Admin) FullName() string              { return a.fullName }
func (a *Admin) Role() authorization.AdminRole { return a.role }
func (a *Admin) IsActive() bool                { return a.active }
func (a *Admin) LastAccessAt() *time.Time      { return a.lastAccessAt }
func (a *Admin) CreatedAt() time.Time          { return a.createdAt }
func (a *Admin) UpdatedAt() time.Time          { return a.updatedAt }

func (a *Admin) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("admin ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("admin ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Admin) SetPassword(password string, hasher PasswordHasher) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	a.passwordHash = hash
	a.updatedAt = biztime.NowUTC()
	return nil
}

// Authenticate checks the password of an active admin and records the access.
func (a *Admin) Authenticate(password string, hasher PasswordHasher) error {
	if !a.active {
		return fmt.Errorf("admin account is disabled")
	}
	if a.passwordHash == "" {
		return fmt.Errorf("admin has no password set")
	}
	if err := hasher.Verify(password, a.passwordHash); err != nil {
		return fmt.Errorf("invalid password")
	}

	now := biztime.NowUTC()
	a.lastAccessAt = &now
	return nil
}

func (a *Admin) Deactivate() {
	a.active = false
	a.updatedAt = biztime.NowUTC()
}
