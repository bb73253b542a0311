// Package error defines domain-specific errors for the Business Manager application.
package error

import "errors"

// Campaign domain errors.
var (
	// ErrCampaignNotFound is returned when a campaign is not found in the system.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrMissingCampaignName is returned when the campaign name is empty.
	ErrMissingCampaignName = errors.New("campaign name is required")

	// ErrInvalidCampaignPlatform is returned when the platform is not a known value.
	ErrInvalidCampaignPlatform = errors.New("platform must be 'Facebook', 'Google' or 'Email'")

	// ErrInvalidCampaignDateRange is returned when the end date is before the start date.
	ErrInvalidCampaignDateRange = errors.New("end date must not be before start date")

	// ErrNegativeCampaignBudget is returned when the budget is negative.
	ErrNegativeCampaignBudget = errors.New("budget cannot be negative")

	// ErrNegativeCampaignCounts is returned when leads or conversions are negative.
	ErrNegativeCampaignCounts = errors.New("leads and conversions cannot be negative")

	// ErrConversionsExceedLeads is returned when conversions are greater than leads generated.
	ErrConversionsExceedLeads = errors.New("conversions cannot be greater than leads generated")

	// ErrInvalidCampaignStatus is returned when the status is not a known value.
	ErrInvalidCampaignStatus = errors.New("status must be 'active', 'completed' or 'paused'")
)

// CampaignErrorCode defines error codes for campaign errors.
// Format: CMP-XXYYYY where XX is category and YYYY is specific error.
type CampaignErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingCampaignName      CampaignErrorCode = "CMP-010001"
	ErrCodeInvalidCampaignPlatform  CampaignErrorCode = "CMP-010002"
	ErrCodeInvalidCampaignDateRange CampaignErrorCode = "CMP-010003"
	ErrCodeNegativeCampaignBudget   CampaignErrorCode = "CMP-010004"
	ErrCodeNegativeCampaignCounts   CampaignErrorCode = "CMP-010005"
	ErrCodeConversionsExceedLeads   CampaignErrorCode = "CMP-010006"
	ErrCodeInvalidCampaignStatus    CampaignErrorCode = "CMP-010007"
	ErrCodeMissingCampaignFields    CampaignErrorCode = "CMP-010008"

	// Lookup errors (02XXXX)
	ErrCodeCampaignNotFound CampaignErrorCode = "CMP-020001"
)

// CampaignError represents a campaign error with code and message.
type CampaignError struct {
	Code    CampaignErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CampaignError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CampaignError) Unwrap() error {
	return e.Err
}

// NewCampaignError creates a new CampaignError with the given code and message.
func NewCampaignError(code CampaignErrorCode, message string, err error) *CampaignError {
	return &CampaignError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
