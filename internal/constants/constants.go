package constants

// Context keys shared between middleware and handlers
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
)

// DefaultTokenTTLHours is the token lifetime applied when TOKEN_TTL_HOURS is unset.
// A value of 0 disables expiry entirely.
const DefaultTokenTTLHours = 72
