// Package error defines domain-specific errors for the Business Manager application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the amount is not greater than zero.
	ErrInvalidTransactionAmount = errors.New("amount must be greater than zero")

	// ErrMissingTransactionCategory is returned when the category is empty.
	ErrMissingTransactionCategory = errors.New("category is required")

	// ErrInvalidTransactionDescription is returned when the description is empty or too long.
	ErrInvalidTransactionDescription = errors.New("invalid description")

	// ErrTransactionNotesTooLong is returned when the notes exceed the maximum length.
	ErrTransactionNotesTooLong = errors.New("notes too long")

	// ErrInvalidRelatedModel is returned when the related model reference is invalid.
	ErrInvalidRelatedModel = errors.New("related model must be 'Invoice' or 'Campaign'")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType        TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount      TransactionErrorCode = "TXN-010002"
	ErrCodeMissingTransactionCategory    TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidTransactionDescription TransactionErrorCode = "TXN-010004"
	ErrCodeTransactionNotesTooLong       TransactionErrorCode = "TXN-010005"
	ErrCodeInvalidRelatedModel           TransactionErrorCode = "TXN-010006"
	ErrCodeMissingTransactionFields      TransactionErrorCode = "TXN-010007"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
