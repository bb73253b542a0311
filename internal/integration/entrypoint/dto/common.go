// Package dto defines data transfer objects for API requests and responses.
package dto

// DateFormat is the wire format for date-only fields.
const DateFormat = "2006-01-02"

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// MessageResponse represents a simple confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
