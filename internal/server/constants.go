package server

// Header names
const (
	HeaderAPIKey = "X-API-Key"
)

// PublicPaths are reachable without an API key
var PublicPaths = []string{
	"/healthz",
	"/readyz",
	"/version",
	"/metrics",
	"/swagger",
}

// Error messages
const (
	ErrMsgUnauthorized = "Unauthorized"
)

// Log messages
const (
	LogMsgAuthFailed = "Authentication failed"
)
