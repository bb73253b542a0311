// Package error defines domain-specific errors for the Business Manager application.
package error

// Cross-cutting API error codes.
const (
	// ErrCodeRateLimited is returned when a client exceeds a rate-limited endpoint.
	ErrCodeRateLimited = "API-429001"
)
