package constant

// Constant package provides constants used throughout the application.

type ctxKey string

const (
	CorrelationIDKey ctxKey = "CorrelationID"
)

// Gin context keys for the identity propagated by the auth gate.
const (
	IdentityKey = "identity"
)

// Request header equivalents of the identity claims, set for downstream
// rendering layers that read headers instead of the gin context.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserName  = "X-User-Name"
	HeaderUserEmail = "X-User-Email"
)
