package authorization

import "time"

// Identity is the authenticated admin attached to a request.
type Identity struct {
	AdminID   uint
	Username  string
	Role      AdminRole
	SessionID string
	ExpiresAt time.Time
}
