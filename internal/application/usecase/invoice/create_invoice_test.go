package invoice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/domain/entity"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
)

func validCreateInvoiceInput() CreateInvoiceInput {
	return CreateInvoiceInput{
		ClientName:  "Acme Corp",
		ClientEmail: "billing@acme.test",
		Items: []InvoiceItemInput{
			{Description: "Website design", Quantity: 1, Price: decimal.NewFromInt(20000)},
			{Description: "Hosting setup", Quantity: 1, Price: decimal.NewFromInt(5000)},
		},
		TaxRate: decimal.NewFromInt(10),
		DueDate: time.Now().UTC().AddDate(0, 1, 0),
	}
}

func TestCreateInvoiceUseCase_Execute(t *testing.T) {
	t.Run("creates invoice with generated number and derived totals", func(t *testing.T) {
		repo := newFakeInvoiceRepository()
		uc := NewCreateInvoiceUseCase(repo)

		output, err := uc.Execute(context.Background(), validCreateInvoiceInput())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		inv := output.Invoice
		if inv.InvoiceNumber != "INV-0001" {
			t.Errorf("expected invoice number INV-0001, got %s", inv.InvoiceNumber)
		}
		if want := decimal.NewFromInt(25000); !inv.Subtotal.Equal(want) {
			t.Errorf("expected subtotal %s, got %s", want, inv.Subtotal)
		}
		if want := decimal.NewFromInt(2500); !inv.Tax.Equal(want) {
			t.Errorf("expected tax %s, got %s", want, inv.Tax)
		}
		if want := decimal.NewFromInt(27500); !inv.Total.Equal(want) {
			t.Errorf("expected total %s, got %s", want, inv.Total)
		}
		if inv.Status != entity.InvoiceStatusPending {
			t.Errorf("expected default status pending, got %s", inv.Status)
		}
		if inv.IssueDate.IsZero() {
			t.Error("expected issue date to default to now")
		}
	})

	t.Run("numbering continues from existing invoices", func(t *testing.T) {
		repo := newFakeInvoiceRepository()
		uc := NewCreateInvoiceUseCase(repo)

		first, err := uc.Execute(context.Background(), validCreateInvoiceInput())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		second, err := uc.Execute(context.Background(), validCreateInvoiceInput())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if first.Invoice.InvoiceNumber != "INV-0001" || second.Invoice.InvoiceNumber != "INV-0002" {
			t.Errorf("expected INV-0001 then INV-0002, got %s then %s",
				first.Invoice.InvoiceNumber, second.Invoice.InvoiceNumber)
		}
	})

	t.Run("keeps a caller-supplied invoice number", func(t *testing.T) {
		repo := newFakeInvoiceRepository()
		uc := NewCreateInvoiceUseCase(repo)

		input := validCreateInvoiceInput()
		input.InvoiceNumber = "INV-0042"

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Invoice.InvoiceNumber != "INV-0042" {
			t.Errorf("expected invoice number INV-0042, got %s", output.Invoice.InvoiceNumber)
		}

		// Generation resumes after the supplied number.
		next, err := uc.Execute(context.Background(), validCreateInvoiceInput())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if next.Invoice.InvoiceNumber != "INV-0043" {
			t.Errorf("expected invoice number INV-0043, got %s", next.Invoice.InvoiceNumber)
		}
	})

	t.Run("duplicate supplied invoice number is rejected", func(t *testing.T) {
		repo := newFakeInvoiceRepository()
		uc := NewCreateInvoiceUseCase(repo)

		input := validCreateInvoiceInput()
		input.InvoiceNumber = "INV-0007"

		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrDuplicateInvoiceNumber) {
			t.Errorf("expected ErrDuplicateInvoiceNumber, got %v", err)
		}
	})

	t.Run("past due date creates invoice as overdue", func(t *testing.T) {
		repo := newFakeInvoiceRepository()
		uc := NewCreateInvoiceUseCase(repo)

		input := validCreateInvoiceInput()
		input.DueDate = time.Now().UTC().AddDate(0, 0, -5)

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Invoice.Status != entity.InvoiceStatusOverdue {
			t.Errorf("expected status overdue, got %s", output.Invoice.Status)
		}
	})

	t.Run("created as paid sets payment date", func(t *testing.T) {
		repo := newFakeInvoiceRepository()
		uc := NewCreateInvoiceUseCase(repo)

		input := validCreateInvoiceInput()
		input.Status = entity.InvoiceStatusPaid

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Invoice.Status != entity.InvoiceStatusPaid {
			t.Errorf("expected status paid, got %s", output.Invoice.Status)
		}
		if output.Invoice.PaymentDate == nil {
			t.Error("expected payment date to be set")
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*CreateInvoiceInput)
			wantErr error
		}{
			{
				name:    "missing client name",
				mutate:  func(in *CreateInvoiceInput) { in.ClientName = "" },
				wantErr: domainerror.ErrMissingClientName,
			},
			{
				name:    "no items",
				mutate:  func(in *CreateInvoiceInput) { in.Items = nil },
				wantErr: domainerror.ErrEmptyInvoiceItems,
			},
			{
				name:    "item without description",
				mutate:  func(in *CreateInvoiceInput) { in.Items[0].Description = "" },
				wantErr: domainerror.ErrMissingItemDescription,
			},
			{
				name:    "zero quantity",
				mutate:  func(in *CreateInvoiceInput) { in.Items[0].Quantity = 0 },
				wantErr: domainerror.ErrInvalidItemQuantity,
			},
			{
				name:    "zero price",
				mutate:  func(in *CreateInvoiceInput) { in.Items[0].Price = decimal.Zero },
				wantErr: domainerror.ErrInvalidItemPrice,
			},
			{
				name:    "tax rate above 100",
				mutate:  func(in *CreateInvoiceInput) { in.TaxRate = decimal.NewFromInt(101) },
				wantErr: domainerror.ErrInvalidTaxRate,
			},
			{
				name:    "missing due date",
				mutate:  func(in *CreateInvoiceInput) { in.DueDate = time.Time{} },
				wantErr: domainerror.ErrMissingDueDate,
			},
			{
				name:    "unknown status",
				mutate:  func(in *CreateInvoiceInput) { in.Status = "draft" },
				wantErr: domainerror.ErrInvalidInvoiceStatus,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := newFakeInvoiceRepository()
				uc := NewCreateInvoiceUseCase(repo)

				input := validCreateInvoiceInput()
				tt.mutate(&input)

				_, err := uc.Execute(context.Background(), input)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
			})
		}
	})

	t.Run("duplicate number maps to conflict error", func(t *testing.T) {
		repo := newFakeInvoiceRepository()
		repo.createErr = domainerror.ErrDuplicateInvoiceNumber
		uc := NewCreateInvoiceUseCase(repo)

		_, err := uc.Execute(context.Background(), validCreateInvoiceInput())
		if !errors.Is(err, domainerror.ErrDuplicateInvoiceNumber) {
			t.Errorf("expected ErrDuplicateInvoiceNumber, got %v", err)
		}
	})
}
