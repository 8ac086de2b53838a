package constants

// Context keys shared between middleware and handlers.
const (
	ContextKeyUserType = "user_type"
	ContextKeyUserID   = "user_id"
)

// Pagination defaults for list endpoints.
const (
	DefaultPageSize = 20
	MinPage         = 1
)

// MinPasswordLength is the minimum accepted password length at signup.
const MinPasswordLength = 8

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"
