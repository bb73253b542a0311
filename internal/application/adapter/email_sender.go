package adapter

import "context"

// SendEmailInput represents a single email to deliver.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the provider's response for a delivered email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender delivers a rendered email through an external provider.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// QueueInvoiceEmailInput carries the data needed to queue an invoice email
// (either the invoice itself or a payment receipt).
type QueueInvoiceEmailInput struct {
	RecipientEmail string
	ClientName     string
	InvoiceNumber  string
	TotalFormatted string
	IssueDate      string
	DueDate        string
	PaymentDate    string
	Notes          string
}

// EmailService queues domain emails for asynchronous delivery.
type EmailService interface {
	// QueueInvoiceEmail queues the "your invoice" email for a client.
	QueueInvoiceEmail(ctx context.Context, input QueueInvoiceEmailInput) error

	// QueuePaymentReceiptEmail queues the payment receipt email after an
	// invoice is marked paid.
	QueuePaymentReceiptEmail(ctx context.Context, input QueueInvoiceEmailInput) error
}
