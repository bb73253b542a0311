package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
	"github.com/biz-manager/backend/internal/domain/valueobject"
)

// paymentDateFormat is the date layout used in payment receipt emails.
const paymentDateFormat = "January 2, 2006"

// MarkInvoicePaidInput represents the input for marking an invoice paid.
// PaymentDate is the effective payment date, defaulting to the current time
// when nil. CreateTransaction controls whether a companion income transaction
// is recorded; callers that already booked the income externally pass false.
type MarkInvoicePaidInput struct {
	ID                uuid.UUID
	PaymentDate       *time.Time
	CreateTransaction bool
}

// MarkInvoicePaidOutput represents the output of marking an invoice paid.
type MarkInvoicePaidOutput struct {
	Invoice *InvoiceOutput

	// Transaction is the companion income transaction, nil when skipped or
	// when recording it failed.
	Transaction *entity.Transaction
}

// MarkInvoicePaidUseCase handles the invoice payment flow: status change,
// companion income transaction and payment receipt email.
type MarkInvoicePaidUseCase struct {
	invoiceRepo     adapter.InvoiceRepository
	transactionRepo adapter.TransactionRepository
	emailService    adapter.EmailService
	currency        valueobject.Currency
}

// NewMarkInvoicePaidUseCase creates a new MarkInvoicePaidUseCase instance.
func NewMarkInvoicePaidUseCase(
	invoiceRepo adapter.InvoiceRepository,
	transactionRepo adapter.TransactionRepository,
	emailService adapter.EmailService,
	currency valueobject.Currency,
) *MarkInvoicePaidUseCase {
	return &MarkInvoicePaidUseCase{
		invoiceRepo:     invoiceRepo,
		transactionRepo: transactionRepo,
		emailService:    emailService,
		currency:        currency,
	}
}

// Execute marks the invoice paid. The status change is the primary effect;
// the companion transaction and receipt email are side effects that log and
// continue on failure rather than rolling the payment back.
func (uc *MarkInvoicePaidUseCase) Execute(ctx context.Context, input MarkInvoicePaidInput) (*MarkInvoicePaidOutput, error) {
	inv, err := uc.invoiceRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	// Already paid: repeating the call must not duplicate the income record.
	if inv.Status == entity.InvoiceStatusPaid {
		return &MarkInvoicePaidOutput{Invoice: ToInvoiceOutput(inv)}, nil
	}

	now := time.Now().UTC()
	paidAt := now
	if input.PaymentDate != nil {
		paidAt = input.PaymentDate.UTC()
	}
	inv.Status = entity.InvoiceStatusPaid
	inv.PaymentDate = &paidAt
	inv.UpdatedAt = now

	if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to mark invoice as paid: %w", err)
	}

	output := &MarkInvoicePaidOutput{Invoice: ToInvoiceOutput(inv)}

	if input.CreateTransaction {
		transaction := entity.NewTransaction(
			entity.TransactionTypeIncome,
			entity.IncomeCategoryInvoice,
			inv.Total,
			paidAt,
			fmt.Sprintf("Payment received for invoice %s from %s", inv.InvoiceNumber, inv.ClientName),
			"",
			&inv.ID,
			entity.RelatedModelInvoice,
		)

		if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
			slog.Error("Failed to record income transaction for paid invoice",
				"invoiceID", inv.ID,
				"invoiceNumber", inv.InvoiceNumber,
				"error", err,
			)
		} else {
			output.Transaction = transaction
		}
	}

	if inv.ClientEmail != "" {
		err := uc.emailService.QueuePaymentReceiptEmail(ctx, adapter.QueueInvoiceEmailInput{
			RecipientEmail: inv.ClientEmail,
			ClientName:     inv.ClientName,
			InvoiceNumber:  inv.InvoiceNumber,
			TotalFormatted: uc.currency.Format(inv.Total),
			IssueDate:      inv.IssueDate.Format(paymentDateFormat),
			DueDate:        inv.DueDate.Format(paymentDateFormat),
			PaymentDate:    paidAt.Format(paymentDateFormat),
			Notes:          inv.Notes,
		})
		if err != nil {
			slog.Error("Failed to queue payment receipt email",
				"invoiceID", inv.ID,
				"invoiceNumber", inv.InvoiceNumber,
				"error", err,
			)
		}
	}

	return output, nil
}
