package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gigboard_backend/internal/config"
	"gigboard_backend/internal/logger"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// InvoiceService issues and settles invoices. Paying an invoice writes a
// ledger entry; the commission rate is taken from the active settings at
// issue time and frozen on the invoice.
type InvoiceService struct {
	invoiceRepo     repositories.InvoiceRepository
	transactionRepo repositories.TransactionRepository
	discounts       *DiscountService
	notifications   *NotificationService
	cfg             *config.Config
}

func NewInvoiceService(
	invoiceRepo repositories.InvoiceRepository,
	transactionRepo repositories.TransactionRepository,
	discounts *DiscountService,
	notifications *NotificationService,
	cfg *config.Config,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:     invoiceRepo,
		transactionRepo: transactionRepo,
		discounts:       discounts,
		notifications:   notifications,
		cfg:             cfg,
	}
}

func (s *InvoiceService) Create(ctx context.Context, req dto.CreateInvoiceRequest) (*models.Invoice, error) {
	invoice := &models.Invoice{
		Number:         newInvoiceNumber(),
		IssuedToUserID: req.IssuedToUserID,
		ProposalID:     req.ProposalID,
		PackageID:      req.PackageID,
		Subtotal:       req.Subtotal,
		Status:         models.InvoiceStatusIssued,
	}

	amount := req.Subtotal
	var redeemed *models.Discount
	if req.DiscountCode != "" {
		discount, err := s.discounts.Resolve(req.DiscountCode)
		if err != nil {
			return nil, err
		}
		discounted := discount.Apply(amount)
		invoice.DiscountCode = discount.Code
		invoice.DiscountAmount = amount - discounted
		amount = discounted
		redeemed = discount
	}

	rate := s.commissionRate()
	invoice.CommissionRate = rate
	invoice.CommissionTotal = amount * rate / 100
	invoice.Total = amount + invoice.CommissionTotal

	if err := s.invoiceRepo.Create(invoice); err != nil {
		return nil, apperrors.StorageError(err)
	}

	if redeemed != nil {
		if err := s.discounts.Redeem(redeemed); err != nil {
			logger.CtxWithError(ctx, "discount usage not counted", err, "discount_id", redeemed.ID)
		}
	}

	s.notifications.InvoiceIssued(ctx, invoice.IssuedToUserID, invoice)

	logger.CtxInfo(ctx, "invoice issued", "invoice_id", invoice.ID, "number", invoice.Number, "total", invoice.Total)
	return invoice, nil
}

func (s *InvoiceService) commissionRate() float64 {
	settings, err := s.transactionRepo.ActiveCommissionSettings()
	if err != nil {
		return s.cfg.Commission.DefaultPercent
	}
	return settings.PaymentPercent
}

func (s *InvoiceService) Get(id string) (*models.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrInvoiceNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return invoice, nil
}

func (s *InvoiceService) List(query dto.InvoiceListQuery) (*dto.InvoiceListResponse, error) {
	criteria := repositories.InvoiceFilter{
		IssuedToUserID: query.UserID,
		Status:         models.InvoiceStatus(query.Status),
		Page:           query.Page,
		PageSize:       query.PageSize,
	}

	invoices, total, err := s.invoiceRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return &dto.InvoiceListResponse{
		Invoices: invoices,
		PageMeta: dto.NewPageMeta(total, query.Page, query.PageSize),
	}, nil
}

// MarkPaid settles an issued invoice and records the payment in the ledger.
func (s *InvoiceService) MarkPaid(ctx context.Context, actorID, id string) (*models.Invoice, error) {
	invoice, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if invoice.Status != models.InvoiceStatusIssued {
		return nil, apperrors.ErrInvoiceNotPayable
	}

	now := time.Now()
	invoice.Status = models.InvoiceStatusPaid
	invoice.PaidAt = &now

	entry := &models.TransactionLog{
		Type:        models.TransactionTypePayment,
		Amount:      invoice.Total,
		UserID:      invoice.IssuedToUserID,
		RelatedKind: "invoice",
		RelatedID:   invoice.ID,
	}
	if err := entry.AppendStatus(models.StatusChange{
		Status:    models.TransactionStatusSucceeded,
		Note:      "invoice " + invoice.Number + " paid",
		ChangedBy: actorID,
		ChangedAt: now,
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// One transaction: a paid invoice without its ledger entry must never
	// be observable.
	if err := s.invoiceRepo.MarkPaid(invoice, entry); err != nil {
		if errors.Is(err, repositories.ErrInvoiceNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	s.notifications.InvoicePaid(ctx, invoice.IssuedToUserID, invoice)

	logger.CtxInfo(ctx, "invoice paid", "invoice_id", invoice.ID, "number", invoice.Number)
	return invoice, nil
}

// Void cancels an invoice that has not been paid.
func (s *InvoiceService) Void(ctx context.Context, id string) (*models.Invoice, error) {
	invoice, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if invoice.Status != models.InvoiceStatusDraft && invoice.Status != models.InvoiceStatusIssued {
		return nil, apperrors.ErrInvoiceNotPayable
	}

	invoice.Status = models.InvoiceStatusVoid
	if err := s.invoiceRepo.Update(invoice); err != nil {
		return nil, apperrors.StorageError(err)
	}

	logger.CtxInfo(ctx, "invoice voided", "invoice_id", invoice.ID, "number", invoice.Number)
	return invoice, nil
}

func newInvoiceNumber() string {
	code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
	return fmt.Sprintf("INV-%s", code)
}
