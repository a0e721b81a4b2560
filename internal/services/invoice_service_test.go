package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gigboard_backend/internal/config"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/realtime"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInvoiceRepo struct {
	repositories.InvoiceRepository
	invoices map[string]*models.Invoice
	ledger   *fakeTransactionRepo
}

func (f *fakeInvoiceRepo) Create(invoice *models.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.NewString()
	}
	clone := *invoice
	f.invoices[invoice.ID] = &clone
	return nil
}

func (f *fakeInvoiceRepo) FindByID(id string) (*models.Invoice, error) {
	invoice, ok := f.invoices[id]
	if !ok {
		return nil, repositories.ErrInvoiceNotFound
	}
	clone := *invoice
	return &clone, nil
}

func (f *fakeInvoiceRepo) Update(invoice *models.Invoice) error {
	stored, ok := f.invoices[invoice.ID]
	if !ok {
		return repositories.ErrInvoiceNotFound
	}
	stored.Status = invoice.Status
	stored.PaidAt = invoice.PaidAt
	return nil
}

// MarkPaid mirrors the production transaction: the invoice update and the
// ledger write land together or not at all.
func (f *fakeInvoiceRepo) MarkPaid(invoice *models.Invoice, entry *models.TransactionLog) error {
	stored, ok := f.invoices[invoice.ID]
	if !ok {
		return repositories.ErrInvoiceNotFound
	}
	if err := f.ledger.Create(entry); err != nil {
		return err
	}
	stored.Status = invoice.Status
	stored.PaidAt = invoice.PaidAt
	return nil
}

type fakeTransactionRepo struct {
	repositories.TransactionRepository
	entries   []*models.TransactionLog
	settings  *models.CommissionSettings
	createErr error
}

func (f *fakeTransactionRepo) Create(entry *models.TransactionLog) error {
	if f.createErr != nil {
		return f.createErr
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeTransactionRepo) ActiveCommissionSettings() (*models.CommissionSettings, error) {
	if f.settings == nil {
		return nil, repositories.ErrCommissionSettingsNotFound
	}
	return f.settings, nil
}

type fakeDiscountRepo struct {
	repositories.DiscountRepository
	discounts map[string]*models.Discount
	usages    map[string]int
}

func (f *fakeDiscountRepo) FindByCode(code string) (*models.Discount, error) {
	discount, ok := f.discounts[strings.ToUpper(code)]
	if !ok {
		return nil, repositories.ErrDiscountNotFound
	}
	clone := *discount
	return &clone, nil
}

func (f *fakeDiscountRepo) IncrementUsage(id string) error {
	f.usages[id]++
	return nil
}

type invoiceFixture struct {
	svc          *InvoiceService
	invoices     *fakeInvoiceRepo
	transactions *fakeTransactionRepo
	discounts    *fakeDiscountRepo
}

func newInvoiceFixture() *invoiceFixture {
	transactions := &fakeTransactionRepo{
		settings: &models.CommissionSettings{PaymentPercent: 10, IsActive: true},
	}
	invoices := &fakeInvoiceRepo{invoices: map[string]*models.Invoice{}, ledger: transactions}
	discounts := &fakeDiscountRepo{
		discounts: map[string]*models.Discount{},
		usages:    map[string]int{},
	}

	cfg := &config.Config{}
	cfg.Commission.DefaultPercent = 10

	notifications := NewNotificationService(&fakeNotificationRepo{}, realtime.NoopPublisher{})
	svc := NewInvoiceService(invoices, transactions, NewDiscountService(discounts), notifications, cfg)

	return &invoiceFixture{svc: svc, invoices: invoices, transactions: transactions, discounts: discounts}
}

func TestCreateInvoiceAppliesDiscountAndCommission(t *testing.T) {
	fx := newInvoiceFixture()

	discount := &models.Discount{
		Code:       "LAUNCH20",
		Type:       models.DiscountTypePercent,
		Value:      20,
		ValidFrom:  time.Now().Add(-time.Hour),
		ValidUntil: time.Now().Add(time.Hour),
		IsActive:   true,
	}
	discount.ID = uuid.NewString()
	fx.discounts.discounts["LAUNCH20"] = discount

	invoice, err := fx.svc.Create(context.Background(), dto.CreateInvoiceRequest{
		IssuedToUserID: uuid.NewString(),
		Subtotal:       1000,
		DiscountCode:   "LAUNCH20",
	})
	require.NoError(t, err)

	// 1000 - 20% = 800; commission 10% of 800 = 80; total 880.
	assert.Equal(t, float64(200), invoice.DiscountAmount)
	assert.Equal(t, float64(10), invoice.CommissionRate)
	assert.Equal(t, float64(80), invoice.CommissionTotal)
	assert.Equal(t, float64(880), invoice.Total)
	assert.Equal(t, models.InvoiceStatusIssued, invoice.Status)
	assert.True(t, strings.HasPrefix(invoice.Number, "INV-"))

	assert.Equal(t, 1, fx.discounts.usages[discount.ID], "a successful issue consumes one use")
}

func TestCreateInvoiceRejectsExhaustedDiscount(t *testing.T) {
	fx := newInvoiceFixture()

	discount := &models.Discount{
		Code:       "SPENT",
		Type:       models.DiscountTypeFixed,
		Value:      50,
		UsageLimit: 1,
		UsageCount: 1,
		IsActive:   true,
	}
	discount.ID = uuid.NewString()
	fx.discounts.discounts["SPENT"] = discount

	_, err := fx.svc.Create(context.Background(), dto.CreateInvoiceRequest{
		IssuedToUserID: uuid.NewString(),
		Subtotal:       100,
		DiscountCode:   "SPENT",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDiscountNotApplicable)
	assert.Empty(t, fx.invoices.invoices, "no invoice is written on a rejected code")
}

func TestMarkPaidWritesLedgerEntry(t *testing.T) {
	fx := newInvoiceFixture()

	invoice, err := fx.svc.Create(context.Background(), dto.CreateInvoiceRequest{
		IssuedToUserID: uuid.NewString(),
		Subtotal:       500,
	})
	require.NoError(t, err)

	paid, err := fx.svc.MarkPaid(context.Background(), "admin-1", invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)

	require.Len(t, fx.transactions.entries, 1)
	entry := fx.transactions.entries[0]
	assert.Equal(t, models.TransactionTypePayment, entry.Type)
	assert.Equal(t, paid.Total, entry.Amount)
	assert.Equal(t, "invoice", entry.RelatedKind)
	assert.Equal(t, invoice.ID, entry.RelatedID)
	assert.Equal(t, models.TransactionStatusSucceeded, entry.Status)

	history, err := entry.History()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "admin-1", history[0].ChangedBy)
}

func TestMarkPaidRollsBackWhenLedgerFails(t *testing.T) {
	fx := newInvoiceFixture()

	invoice, err := fx.svc.Create(context.Background(), dto.CreateInvoiceRequest{
		IssuedToUserID: uuid.NewString(),
		Subtotal:       500,
	})
	require.NoError(t, err)

	fx.transactions.createErr = errors.New("ledger unavailable")
	_, err = fx.svc.MarkPaid(context.Background(), "admin-1", invoice.ID)
	require.Error(t, err)

	stored := fx.invoices.invoices[invoice.ID]
	assert.Equal(t, models.InvoiceStatusIssued, stored.Status,
		"a failed ledger write must not leave the invoice paid")
	assert.Nil(t, stored.PaidAt)
	assert.Empty(t, fx.transactions.entries)

	// Once the ledger recovers the invoice is still payable.
	fx.transactions.createErr = nil
	paid, err := fx.svc.MarkPaid(context.Background(), "admin-1", invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusPaid, paid.Status)
	assert.Len(t, fx.transactions.entries, 1)
}

func TestMarkPaidOnlyOnce(t *testing.T) {
	fx := newInvoiceFixture()

	invoice, err := fx.svc.Create(context.Background(), dto.CreateInvoiceRequest{
		IssuedToUserID: uuid.NewString(),
		Subtotal:       500,
	})
	require.NoError(t, err)

	_, err = fx.svc.MarkPaid(context.Background(), "admin-1", invoice.ID)
	require.NoError(t, err)

	_, err = fx.svc.MarkPaid(context.Background(), "admin-1", invoice.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvoiceNotPayable)
	assert.Len(t, fx.transactions.entries, 1, "a second pay must not add a ledger entry")
}
