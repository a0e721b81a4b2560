package dto

import (
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
)

type CreateTransactionRequest struct {
	UserID      string                 `json:"user_id" binding:"required" validate:"required,uuid"`
	Type        models.TransactionType `json:"type" binding:"required" validate:"required,oneof=payment payout refund commission"`
	Amount      float64                `json:"amount" binding:"required" validate:"required,gt=0"`
	Currency    string                 `json:"currency" validate:"omitempty,len=3"`
	RelatedKind string                 `json:"related_kind,omitempty" validate:"omitempty,oneof=invoice proposal package"`
	RelatedID   string                 `json:"related_id,omitempty" validate:"omitempty,uuid"`
	Note        string                 `json:"note,omitempty" validate:"omitempty,max=500"`
}

type AppendTransactionStatusRequest struct {
	Status models.TransactionStatus `json:"status" binding:"required" validate:"required,oneof=pending succeeded failed reversed"`
	Note   string                   `json:"note,omitempty" validate:"omitempty,max=500"`
}

type AppendAdminActionRequest struct {
	Action string `json:"action" binding:"required" validate:"required,min=2,max=100"`
	Note   string `json:"note,omitempty" validate:"omitempty,max=500"`
}

type UpdateCommissionRequest struct {
	PaymentPercent float64 `json:"payment_percent" validate:"gte=0,lte=100"`
	PayoutPercent  float64 `json:"payout_percent" validate:"gte=0,lte=100"`
}

type TransactionListQuery struct {
	UserID   string `form:"user_id" validate:"omitempty,uuid"`
	Type     string `form:"type" validate:"omitempty,oneof=payment payout refund commission"`
	Status   string `form:"status" validate:"omitempty,oneof=pending succeeded failed reversed"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type TransactionListResponse struct {
	Transactions []models.TransactionLog `json:"transactions"`
	PageMeta
}

type TransactionSummaryResponse struct {
	Totals   map[string]repositories.TransactionTotals `json:"totals"`
	ByStatus map[string]int64                          `json:"by_status"`
}
