// Package error defines domain-specific errors for the Business Manager application.
package error

import "errors"

// Report and dashboard domain errors.
var (
	// ErrInvalidReportDateRange is returned when the end date is before the start date.
	ErrInvalidReportDateRange = errors.New("end date must be after start date")

	// ErrInvalidReportType is returned when the report type filter is not 'income' or 'expense'.
	ErrInvalidReportType = errors.New("type must be 'income' or 'expense'")
)

// ReportErrorCode defines error codes for report and dashboard errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportDateRange ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportType      ReportErrorCode = "RPT-010002"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
