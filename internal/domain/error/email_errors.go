// Package error defines domain-specific errors for the Business Manager application.
package error

import "errors"

// Email domain errors.
var (
	// ErrEmailQueueFailed is returned when an email could not be queued.
	ErrEmailQueueFailed = errors.New("failed to queue email")

	// ErrEmailSendFailed is returned when an email could not be sent.
	ErrEmailSendFailed = errors.New("failed to send email")

	// ErrEmailJobNotFound is returned when an email job is not found in the queue.
	ErrEmailJobNotFound = errors.New("email job not found")
)

// EmailErrorCode defines error codes for email errors.
// Format: EML-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	ErrCodeEmailQueueFailed      EmailErrorCode = "EML-010001"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-020001"
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-020002"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// IsPermanent returns true when the error should not be retried.
func (e *EmailError) IsPermanent() bool {
	return e.Code == ErrCodePermanentEmailFailure
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
