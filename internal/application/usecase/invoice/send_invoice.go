package invoice

import (
	"context"

	"github.com/google/uuid"

	"github.com/biz-manager/backend/internal/application/adapter"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
	"github.com/biz-manager/backend/internal/domain/valueobject"
)

// SendInvoiceOutput represents the output of sending an invoice.
type SendInvoiceOutput struct {
	Invoice *InvoiceOutput
}

// SendInvoiceUseCase queues the invoice email for a client.
type SendInvoiceUseCase struct {
	invoiceRepo  adapter.InvoiceRepository
	emailService adapter.EmailService
	currency     valueobject.Currency
}

// NewSendInvoiceUseCase creates a new SendInvoiceUseCase instance.
func NewSendInvoiceUseCase(
	invoiceRepo adapter.InvoiceRepository,
	emailService adapter.EmailService,
	currency valueobject.Currency,
) *SendInvoiceUseCase {
	return &SendInvoiceUseCase{
		invoiceRepo:  invoiceRepo,
		emailService: emailService,
		currency:     currency,
	}
}

// Execute queues the invoice email. The invoice must carry a client email.
func (uc *SendInvoiceUseCase) Execute(ctx context.Context, id uuid.UUID) (*SendInvoiceOutput, error) {
	inv, err := uc.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.ClientEmail == "" {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeMissingClientEmail,
			"invoice has no client email",
			domainerror.ErrMissingClientEmail,
		)
	}

	var paymentDate string
	if inv.PaymentDate != nil {
		paymentDate = inv.PaymentDate.Format(paymentDateFormat)
	}

	err = uc.emailService.QueueInvoiceEmail(ctx, adapter.QueueInvoiceEmailInput{
		RecipientEmail: inv.ClientEmail,
		ClientName:     inv.ClientName,
		InvoiceNumber:  inv.InvoiceNumber,
		TotalFormatted: uc.currency.Format(inv.Total),
		IssueDate:      inv.IssueDate.Format(paymentDateFormat),
		DueDate:        inv.DueDate.Format(paymentDateFormat),
		PaymentDate:    paymentDate,
		Notes:          inv.Notes,
	})
	if err != nil {
		return nil, err
	}

	return &SendInvoiceOutput{Invoice: ToInvoiceOutput(inv)}, nil
}
