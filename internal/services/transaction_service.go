package services

import (
	"context"
	"errors"
	"time"

	"gigboard_backend/internal/logger"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"
)

// TransactionService fronts the append-only ledger. Entries are created
// once; all later changes are appended to the histories.
type TransactionService struct {
	transactionRepo repositories.TransactionRepository
}

func NewTransactionService(transactionRepo repositories.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

func (s *TransactionService) Create(ctx context.Context, actorID string, req dto.CreateTransactionRequest) (*models.TransactionLog, error) {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	entry := &models.TransactionLog{
		Type:        req.Type,
		Amount:      req.Amount,
		Currency:    currency,
		UserID:      req.UserID,
		RelatedKind: req.RelatedKind,
		RelatedID:   req.RelatedID,
	}
	if err := entry.AppendStatus(models.StatusChange{
		Status:    models.TransactionStatusPending,
		Note:      req.Note,
		ChangedBy: actorID,
		ChangedAt: time.Now(),
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.transactionRepo.Create(entry); err != nil {
		return nil, apperrors.StorageError(err)
	}

	logger.CtxInfo(ctx, "ledger entry created",
		"transaction_id", entry.ID, "type", entry.Type, "amount", entry.Amount)
	return entry, nil
}

func (s *TransactionService) Get(id string) (*models.TransactionLog, error) {
	entry, err := s.transactionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return entry, nil
}

// AppendStatus adds a status change to the entry's history. The history is
// strictly append-only; nothing already recorded is rewritten.
func (s *TransactionService) AppendStatus(ctx context.Context, actorID, id string, req dto.AppendTransactionStatusRequest) (*models.TransactionLog, error) {
	entry, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := entry.AppendStatus(models.StatusChange{
		Status:    req.Status,
		Note:      req.Note,
		ChangedBy: actorID,
		ChangedAt: time.Now(),
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.transactionRepo.SaveHistories(entry); err != nil {
		return nil, apperrors.StorageError(err)
	}

	logger.CtxInfo(ctx, "ledger status appended",
		"transaction_id", entry.ID, "status", req.Status, "by", actorID)
	return entry, nil
}

// AppendAdminAction records an audit entry on the transaction.
func (s *TransactionService) AppendAdminAction(ctx context.Context, actorID, id string, req dto.AppendAdminActionRequest) (*models.TransactionLog, error) {
	entry, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := entry.AppendAdminAction(models.AdminAction{
		Action:      req.Action,
		Note:        req.Note,
		PerformedBy: actorID,
		PerformedAt: time.Now(),
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.transactionRepo.SaveHistories(entry); err != nil {
		return nil, apperrors.StorageError(err)
	}

	logger.CtxInfo(ctx, "admin action recorded",
		"transaction_id", entry.ID, "action", req.Action, "by", actorID)
	return entry, nil
}

func (s *TransactionService) List(query dto.TransactionListQuery) (*dto.TransactionListResponse, error) {
	criteria := repositories.TransactionFilter{
		UserID:   query.UserID,
		Type:     models.TransactionType(query.Type),
		Status:   models.TransactionStatus(query.Status),
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	if query.DateFrom != "" {
		from, err := time.Parse("2006-01-02", query.DateFrom)
		if err != nil {
			return nil, apperrors.ErrInvalidOperation("transaction", "date_from must be YYYY-MM-DD")
		}
		criteria.DateFrom = &from
	}
	if query.DateTo != "" {
		to, err := time.Parse("2006-01-02", query.DateTo)
		if err != nil {
			return nil, apperrors.ErrInvalidOperation("transaction", "date_to must be YYYY-MM-DD")
		}
		end := to.Add(24*time.Hour - time.Nanosecond)
		criteria.DateTo = &end
	}

	entries, total, err := s.transactionRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return &dto.TransactionListResponse{
		Transactions: entries,
		PageMeta:     dto.NewPageMeta(total, query.Page, query.PageSize),
	}, nil
}

func (s *TransactionService) Summary(dateFrom, dateTo time.Time) (*dto.TransactionSummaryResponse, error) {
	totals, err := s.transactionRepo.SumByType(dateFrom, dateTo)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	byStatus, err := s.transactionRepo.CountByStatus()
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	return &dto.TransactionSummaryResponse{Totals: totals, ByStatus: byStatus}, nil
}

func (s *TransactionService) CommissionSettings() (*models.CommissionSettings, error) {
	settings, err := s.transactionRepo.ActiveCommissionSettings()
	if err != nil {
		if errors.Is(err, repositories.ErrCommissionSettingsNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return settings, nil
}

// UpdateCommission writes a new settings row; previous rows stay as history.
func (s *TransactionService) UpdateCommission(ctx context.Context, actorID string, req dto.UpdateCommissionRequest) (*models.CommissionSettings, error) {
	settings := &models.CommissionSettings{
		PaymentPercent: req.PaymentPercent,
		PayoutPercent:  req.PayoutPercent,
		UpdatedBy:      actorID,
	}
	if err := s.transactionRepo.SaveCommissionSettings(settings); err != nil {
		return nil, apperrors.StorageError(err)
	}

	logger.CtxInfo(ctx, "commission settings updated",
		"payment_percent", req.PaymentPercent, "payout_percent", req.PayoutPercent, "by", actorID)
	return settings, nil
}
