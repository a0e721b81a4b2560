package dto

import (
	"time"

	"gigboard_backend/internal/models"
)

type CreatePackageRequest struct {
	Name         string  `json:"name" binding:"required" validate:"required,min=2,max=150"`
	Description  string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price        float64 `json:"price" binding:"required" validate:"required,gt=0"`
	DeliveryDays int     `json:"delivery_days" validate:"omitempty,min=1,max=365"`
	Revisions    int     `json:"revisions" validate:"omitempty,gte=0"`
}

type UpdatePackageRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	DeliveryDays *int     `json:"delivery_days,omitempty" validate:"omitempty,min=1,max=365"`
	Revisions    *int     `json:"revisions,omitempty" validate:"omitempty,gte=0"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

type CreateDiscountRequest struct {
	Code       string              `json:"code" binding:"required" validate:"required,min=3,max=40"`
	Type       models.DiscountType `json:"type" binding:"required" validate:"required,oneof=percent fixed"`
	Value      float64             `json:"value" binding:"required" validate:"required,gt=0"`
	ValidFrom  time.Time           `json:"valid_from" binding:"required" validate:"required"`
	ValidUntil time.Time           `json:"valid_until" binding:"required" validate:"required,gtfield=ValidFrom"`
	UsageLimit int                 `json:"usage_limit" validate:"omitempty,gte=0"`
}

type UpdateDiscountRequest struct {
	Value      *float64   `json:"value,omitempty" validate:"omitempty,gt=0"`
	ValidFrom  *time.Time `json:"valid_from,omitempty"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
	UsageLimit *int       `json:"usage_limit,omitempty" validate:"omitempty,gte=0"`
	IsActive   *bool      `json:"is_active,omitempty"`
}

type CreateInvoiceRequest struct {
	IssuedToUserID string  `json:"issued_to_user_id" binding:"required" validate:"required,uuid"`
	ProposalID     *string `json:"proposal_id,omitempty" validate:"omitempty,uuid"`
	PackageID      *string `json:"package_id,omitempty" validate:"omitempty,uuid"`
	Subtotal       float64 `json:"subtotal" binding:"required" validate:"required,gt=0"`
	DiscountCode   string  `json:"discount_code,omitempty"`
}

type InvoiceListQuery struct {
	Status   string `form:"status" validate:"omitempty,oneof=draft issued paid void"`
	UserID   string `form:"user_id" validate:"omitempty,uuid"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type InvoiceListResponse struct {
	Invoices []models.Invoice `json:"invoices"`
	PageMeta
}
