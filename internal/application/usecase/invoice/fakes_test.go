package invoice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
)

// fakeInvoiceRepository is an in-memory InvoiceRepository for use case tests.
type fakeInvoiceRepository struct {
	invoices  map[uuid.UUID]*entity.Invoice
	createErr error
	updateErr error
}

func newFakeInvoiceRepository() *fakeInvoiceRepository {
	return &fakeInvoiceRepository{invoices: make(map[uuid.UUID]*entity.Invoice)}
}

func (r *fakeInvoiceRepository) Create(_ context.Context, inv *entity.Invoice) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.invoices {
		if existing.InvoiceNumber == inv.InvoiceNumber {
			return domainerror.ErrDuplicateInvoiceNumber
		}
	}
	r.invoices[inv.ID] = inv
	return nil
}

func (r *fakeInvoiceRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, domainerror.ErrInvoiceNotFound
	}
	return inv, nil
}

func (r *fakeInvoiceRepository) FindByFilter(_ context.Context, _ adapter.InvoiceFilter) ([]*entity.Invoice, error) {
	result := make([]*entity.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		result = append(result, inv)
	}
	return result, nil
}

func (r *fakeInvoiceRepository) Update(_ context.Context, inv *entity.Invoice) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.invoices[inv.ID]; !ok {
		return domainerror.ErrInvoiceNotFound
	}
	r.invoices[inv.ID] = inv
	return nil
}

func (r *fakeInvoiceRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.invoices, id)
	return nil
}

func (r *fakeInvoiceRepository) ListInvoiceNumbers(_ context.Context) ([]string, error) {
	numbers := make([]string, 0, len(r.invoices))
	for _, inv := range r.invoices {
		numbers = append(numbers, inv.InvoiceNumber)
	}
	return numbers, nil
}

func (r *fakeInvoiceRepository) CountByStatus(_ context.Context) (*entity.InvoiceStatusCounts, error) {
	counts := &entity.InvoiceStatusCounts{}
	for _, inv := range r.invoices {
		counts.Total++
		switch inv.Status {
		case entity.InvoiceStatusPaid:
			counts.Paid++
		case entity.InvoiceStatusPending:
			counts.Pending++
		case entity.InvoiceStatusOverdue:
			counts.Overdue++
		}
	}
	return counts, nil
}

func (r *fakeInvoiceRepository) GetAmountByStatus(_ context.Context) ([]entity.InvoiceAmountByStatus, error) {
	byStatus := map[entity.InvoiceStatus]decimal.Decimal{}
	for _, inv := range r.invoices {
		byStatus[inv.Status] = byStatus[inv.Status].Add(inv.Total)
	}
	result := make([]entity.InvoiceAmountByStatus, 0, len(byStatus))
	for status, total := range byStatus {
		result = append(result, entity.InvoiceAmountByStatus{Status: status, Total: total})
	}
	return result, nil
}

func (r *fakeInvoiceRepository) GetTotalAmount(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, inv := range r.invoices {
		total = total.Add(inv.Total)
	}
	return total, nil
}

func (r *fakeInvoiceRepository) GetOutstandingAmount(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, inv := range r.invoices {
		if inv.Status == entity.InvoiceStatusPending || inv.Status == entity.InvoiceStatusOverdue {
			total = total.Add(inv.Total)
		}
	}
	return total, nil
}

// fakeTransactionRepository records created transactions for use case tests.
type fakeTransactionRepository struct {
	transactions []*entity.Transaction
	createErr    error
}

func (r *fakeTransactionRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeTransactionRepository) FindByID(_ context.Context, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepository) FindByFilter(_ context.Context, _ adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return r.transactions, nil
}

func (r *fakeTransactionRepository) Update(_ context.Context, _ *entity.Transaction) error {
	return nil
}

func (r *fakeTransactionRepository) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (r *fakeTransactionRepository) GetSummary(_ context.Context, _ entity.TransactionType, _, _ time.Time) (*entity.TransactionSummary, error) {
	return &entity.TransactionSummary{Total: decimal.Zero}, nil
}

func (r *fakeTransactionRepository) GetCategoryBreakdown(_ context.Context, _ entity.TransactionType, _, _ time.Time) ([]entity.CategoryTotal, error) {
	return nil, nil
}

// fakeEmailService records queued emails for use case tests.
type fakeEmailService struct {
	invoiceEmails []adapter.QueueInvoiceEmailInput
	receiptEmails []adapter.QueueInvoiceEmailInput
	queueErr      error
}

func (s *fakeEmailService) QueueInvoiceEmail(_ context.Context, input adapter.QueueInvoiceEmailInput) error {
	if s.queueErr != nil {
		return s.queueErr
	}
	s.invoiceEmails = append(s.invoiceEmails, input)
	return nil
}

func (s *fakeEmailService) QueuePaymentReceiptEmail(_ context.Context, input adapter.QueueInvoiceEmailInput) error {
	if s.queueErr != nil {
		return s.queueErr
	}
	s.receiptEmails = append(s.receiptEmails, input)
	return nil
}
