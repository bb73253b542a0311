// Package error defines domain-specific errors for the Business Manager application.
package error

import "errors"

// Invoice domain errors.
var (
	// ErrInvoiceNotFound is returned when an invoice is not found in the system.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrMissingClientName is returned when the client name is empty.
	ErrMissingClientName = errors.New("client name is required")

	// ErrEmptyInvoiceItems is returned when the invoice has no line items.
	ErrEmptyInvoiceItems = errors.New("invoice must have at least one item")

	// ErrMissingItemDescription is returned when a line item has no description.
	ErrMissingItemDescription = errors.New("item description is required")

	// ErrInvalidItemQuantity is returned when a line item quantity is below one.
	ErrInvalidItemQuantity = errors.New("quantity must be at least 1")

	// ErrInvalidItemPrice is returned when a line item price is not greater than zero.
	ErrInvalidItemPrice = errors.New("price must be greater than zero")

	// ErrInvalidTaxRate is returned when the tax rate is outside [0,100].
	ErrInvalidTaxRate = errors.New("tax rate must be between 0 and 100")

	// ErrMissingDueDate is returned when the due date is absent.
	ErrMissingDueDate = errors.New("due date is required")

	// ErrInvalidInvoiceStatus is returned when the status is not a known value.
	ErrInvalidInvoiceStatus = errors.New("status must be 'pending', 'paid' or 'overdue'")

	// ErrDuplicateInvoiceNumber is returned when the invoice number collides with
	// an existing one. The storage uniqueness constraint turns the numbering race
	// into this error rather than silent corruption.
	ErrDuplicateInvoiceNumber = errors.New("invoice number already exists")

	// ErrMissingClientEmail is returned when sending an invoice that has no client email.
	ErrMissingClientEmail = errors.New("invoice has no client email")
)

// InvoiceErrorCode defines error codes for invoice errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InvoiceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingClientName      InvoiceErrorCode = "INV-010001"
	ErrCodeEmptyInvoiceItems      InvoiceErrorCode = "INV-010002"
	ErrCodeMissingItemDescription InvoiceErrorCode = "INV-010003"
	ErrCodeInvalidItemQuantity    InvoiceErrorCode = "INV-010004"
	ErrCodeInvalidItemPrice       InvoiceErrorCode = "INV-010005"
	ErrCodeInvalidTaxRate         InvoiceErrorCode = "INV-010006"
	ErrCodeMissingDueDate         InvoiceErrorCode = "INV-010007"
	ErrCodeInvalidInvoiceStatus   InvoiceErrorCode = "INV-010008"
	ErrCodeMissingInvoiceFields   InvoiceErrorCode = "INV-010009"
	ErrCodeMissingClientEmail     InvoiceErrorCode = "INV-010010"

	// Lookup errors (02XXXX)
	ErrCodeInvoiceNotFound InvoiceErrorCode = "INV-020001"

	// Conflict errors (03XXXX)
	ErrCodeDuplicateInvoiceNumber InvoiceErrorCode = "INV-030001"
)

// InvoiceError represents an invoice error with code and message.
type InvoiceError struct {
	Code    InvoiceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvoiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvoiceError) Unwrap() error {
	return e.Err
}

// NewInvoiceError creates a new InvoiceError with the given code and message.
func NewInvoiceError(code InvoiceErrorCode, message string, err error) *InvoiceError {
	return &InvoiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
