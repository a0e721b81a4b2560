package models

import "time"

// PricingPackage is a talent-owned service tier.
type PricingPackage struct {
	BaseModel
	TalentProfileID string  `gorm:"type:uuid;not null;index" json:"talent_profile_id"`
	Name            string  `gorm:"not null" json:"name"`
	Description     string  `json:"description"`
	Price           float64 `gorm:"not null" json:"price"`
	DeliveryDays    int     `gorm:"default:7" json:"delivery_days"`
	Revisions       int     `gorm:"default:1" json:"revisions"`
	IsActive        bool    `gorm:"default:true" json:"is_active"`
}

type Discount struct {
	BaseModel
	Code       string       `gorm:"uniqueIndex;not null" json:"code"`
	Type       DiscountType `gorm:"type:varchar(10);not null" json:"type"`
	Value      float64      `gorm:"not null" json:"value"`
	ValidFrom  time.Time    `json:"valid_from"`
	ValidUntil time.Time    `json:"valid_until"`
	UsageLimit int          `gorm:"default:0" json:"usage_limit"` // 0 = unlimited
	UsageCount int          `gorm:"default:0" json:"usage_count"`
	IsActive   bool         `gorm:"default:true" json:"is_active"`
}

// Usable reports whether the discount can be applied at the given time.
func (d *Discount) Usable(at time.Time) bool {
	if !d.IsActive {
		return false
	}
	if !d.ValidFrom.IsZero() && at.Before(d.ValidFrom) {
		return false
	}
	if !d.ValidUntil.IsZero() && at.After(d.ValidUntil) {
		return false
	}
	if d.UsageLimit > 0 && d.UsageCount >= d.UsageLimit {
		return false
	}
	return true
}

// Apply returns the amount after the discount, never below zero.
func (d *Discount) Apply(amount float64) float64 {
	var discounted float64
	switch d.Type {
	case DiscountTypePercent:
		discounted = amount - amount*d.Value/100
	case DiscountTypeFixed:
		discounted = amount - d.Value
	default:
		discounted = amount
	}
	if discounted < 0 {
		return 0
	}
	return discounted
}

type Invoice struct {
	BaseModel
	Number          string        `gorm:"uniqueIndex;not null" json:"number"`
	IssuedToUserID  string        `gorm:"type:uuid;not null;index" json:"issued_to_user_id"`
	ProposalID      *string       `gorm:"type:uuid;index" json:"proposal_id,omitempty"`
	PackageID       *string       `gorm:"type:uuid;index" json:"package_id,omitempty"`
	Subtotal        float64       `gorm:"not null" json:"subtotal"`
	DiscountCode    string        `json:"discount_code"`
	DiscountAmount  float64       `json:"discount_amount"`
	CommissionRate  float64       `json:"commission_rate"`
	CommissionTotal float64       `json:"commission_total"`
	Total           float64       `gorm:"not null" json:"total"`
	Status          InvoiceStatus `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	PaidAt          *time.Time    `json:"paid_at,omitempty"`
}
