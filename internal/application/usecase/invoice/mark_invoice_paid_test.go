package invoice

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/domain/entity"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
	"github.com/biz-manager/backend/internal/domain/valueobject"
)

func seedPendingInvoice(repo *fakeInvoiceRepository) *entity.Invoice {
	inv := entity.NewInvoice(
		"INV-0001",
		"Acme Corp",
		"billing@acme.test",
		"1 Main St",
		[]entity.InvoiceItem{
			{Description: "Website redesign", Quantity: 1, Price: decimal.NewFromInt(18000)},
		},
		decimal.NewFromInt(10),
		time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC),
		entity.InvoiceStatusPending,
		"Net 30",
	)
	CalculateTotals(inv)
	repo.invoices[inv.ID] = inv
	return inv
}

func TestMarkInvoicePaidUseCase_Execute(t *testing.T) {
	currency := valueobject.CurrencyFromCode("USD")

	t.Run("marks paid and records income transaction", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepository()
		transactionRepo := &fakeTransactionRepository{}
		emailService := &fakeEmailService{}
		inv := seedPendingInvoice(invoiceRepo)

		uc := NewMarkInvoicePaidUseCase(invoiceRepo, transactionRepo, emailService, currency)

		output, err := uc.Execute(context.Background(), MarkInvoicePaidInput{ID: inv.ID, CreateTransaction: true})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if output.Invoice.Status != entity.InvoiceStatusPaid {
			t.Errorf("expected status paid, got %s", output.Invoice.Status)
		}
		if output.Invoice.PaymentDate == nil {
			t.Error("expected payment date to be set")
		}

		if len(transactionRepo.transactions) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(transactionRepo.transactions))
		}
		txn := transactionRepo.transactions[0]
		if txn.Type != entity.TransactionTypeIncome {
			t.Errorf("expected income transaction, got %s", txn.Type)
		}
		if txn.Category != entity.IncomeCategoryInvoice {
			t.Errorf("expected category %q, got %q", entity.IncomeCategoryInvoice, txn.Category)
		}
		if want := decimal.NewFromInt(19800); !txn.Amount.Equal(want) {
			t.Errorf("expected amount %s, got %s", want, txn.Amount)
		}
		wantDescription := fmt.Sprintf("Payment received for invoice %s from %s", inv.InvoiceNumber, inv.ClientName)
		if txn.Description != wantDescription {
			t.Errorf("expected description %q, got %q", wantDescription, txn.Description)
		}
		if txn.RelatedTo == nil || *txn.RelatedTo != inv.ID {
			t.Error("expected transaction to reference the invoice")
		}
		if txn.RelatedModel != entity.RelatedModelInvoice {
			t.Errorf("expected related model Invoice, got %s", txn.RelatedModel)
		}

		if len(emailService.receiptEmails) != 1 {
			t.Fatalf("expected 1 receipt email, got %d", len(emailService.receiptEmails))
		}
		if emailService.receiptEmails[0].RecipientEmail != "billing@acme.test" {
			t.Errorf("unexpected recipient %q", emailService.receiptEmails[0].RecipientEmail)
		}
	})

	t.Run("uses the supplied payment date", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepository()
		transactionRepo := &fakeTransactionRepository{}
		inv := seedPendingInvoice(invoiceRepo)

		uc := NewMarkInvoicePaidUseCase(invoiceRepo, transactionRepo, &fakeEmailService{}, currency)

		paidAt := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
		output, err := uc.Execute(context.Background(), MarkInvoicePaidInput{
			ID:                inv.ID,
			PaymentDate:       &paidAt,
			CreateTransaction: true,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if output.Invoice.PaymentDate == nil || !output.Invoice.PaymentDate.Equal(paidAt) {
			t.Errorf("expected payment date %s, got %v", paidAt, output.Invoice.PaymentDate)
		}
		if len(transactionRepo.transactions) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(transactionRepo.transactions))
		}
		if !transactionRepo.transactions[0].Date.Equal(paidAt) {
			t.Errorf("expected transaction date %s, got %s", paidAt, transactionRepo.transactions[0].Date)
		}
	})

	t.Run("skips transaction when disabled", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepository()
		transactionRepo := &fakeTransactionRepository{}
		inv := seedPendingInvoice(invoiceRepo)

		uc := NewMarkInvoicePaidUseCase(invoiceRepo, transactionRepo, &fakeEmailService{}, currency)

		output, err := uc.Execute(context.Background(), MarkInvoicePaidInput{ID: inv.ID, CreateTransaction: false})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Invoice.Status != entity.InvoiceStatusPaid {
			t.Errorf("expected status paid, got %s", output.Invoice.Status)
		}
		if len(transactionRepo.transactions) != 0 {
			t.Errorf("expected no transactions, got %d", len(transactionRepo.transactions))
		}
	})

	t.Run("already paid invoice is a no-op", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepository()
		transactionRepo := &fakeTransactionRepository{}
		inv := seedPendingInvoice(invoiceRepo)
		paidAt := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)
		inv.Status = entity.InvoiceStatusPaid
		inv.PaymentDate = &paidAt

		uc := NewMarkInvoicePaidUseCase(invoiceRepo, transactionRepo, &fakeEmailService{}, currency)

		output, err := uc.Execute(context.Background(), MarkInvoicePaidInput{ID: inv.ID, CreateTransaction: true})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !output.Invoice.PaymentDate.Equal(paidAt) {
			t.Error("expected original payment date to be preserved")
		}
		if len(transactionRepo.transactions) != 0 {
			t.Errorf("expected no duplicate transaction, got %d", len(transactionRepo.transactions))
		}
	})

	t.Run("transaction failure does not fail payment", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepository()
		transactionRepo := &fakeTransactionRepository{createErr: errors.New("connection refused")}
		inv := seedPendingInvoice(invoiceRepo)

		uc := NewMarkInvoicePaidUseCase(invoiceRepo, transactionRepo, &fakeEmailService{}, currency)

		output, err := uc.Execute(context.Background(), MarkInvoicePaidInput{ID: inv.ID, CreateTransaction: true})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Invoice.Status != entity.InvoiceStatusPaid {
			t.Errorf("expected status paid, got %s", output.Invoice.Status)
		}
		if output.Transaction != nil {
			t.Error("expected no transaction in output after failure")
		}
	})

	t.Run("unknown invoice", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepository()
		uc := NewMarkInvoicePaidUseCase(invoiceRepo, &fakeTransactionRepository{}, &fakeEmailService{}, currency)

		_, err := uc.Execute(context.Background(), MarkInvoicePaidInput{ID: seedPendingInvoice(newFakeInvoiceRepository()).ID, CreateTransaction: true})
		if !errors.Is(err, domainerror.ErrInvoiceNotFound) {
			t.Errorf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}
