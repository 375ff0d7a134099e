package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Admin listing limits
	DefaultTicketListLimit   = 50
	DefaultTicketSearchLimit = 20

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys set by the auth middleware
	ContextKeyAdminID   = "admin_id"
	ContextKeyIdentity  = "identity"
	ContextKeySessionID = "session_id"
	ContextKeyRequestID = "request_id"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgTryAgain            = "Ticket number already taken, please try again"
)
