package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// TransactionLog is the ledger entry for money movement. The core columns
// are written once; every later state change is appended to StatusHistory or
// AdminActions, never overwritten, so the full history stays auditable.
type TransactionLog struct {
	BaseModel
	Type            TransactionType   `gorm:"type:varchar(20);not null;index" json:"type"`
	Amount          float64           `gorm:"not null" json:"amount"`
	Currency        string            `gorm:"type:varchar(3);default:'USD'" json:"currency"`
	UserID          string            `gorm:"type:uuid;not null;index" json:"user_id"`
	RelatedKind     string            `gorm:"type:varchar(30)" json:"related_kind"` // invoice | proposal | package
	RelatedID       string            `gorm:"type:uuid" json:"related_id"`
	PaymentIntentID string            `json:"payment_intent_id"`
	TransferID      string            `json:"transfer_id"`
	RefundID        string            `json:"refund_id"`
	Status          TransactionStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	StatusHistory   datatypes.JSON    `gorm:"type:jsonb" json:"status_history"`
	AdminActions    datatypes.JSON    `gorm:"type:jsonb" json:"admin_actions"`
}

// StatusChange is one element of the append-only StatusHistory list.
type StatusChange struct {
	Status    TransactionStatus `json:"status"`
	Note      string            `json:"note,omitempty"`
	ChangedBy string            `json:"changed_by,omitempty"`
	ChangedAt time.Time         `json:"changed_at"`
}

// AdminAction is one element of the append-only AdminActions list.
type AdminAction struct {
	Action      string    `json:"action"`
	Note        string    `json:"note,omitempty"`
	PerformedBy string    `json:"performed_by"`
	PerformedAt time.Time `json:"performed_at"`
}

// AppendStatus adds a change to the history and mirrors it into the Status
// column. Existing entries are never modified.
func (t *TransactionLog) AppendStatus(change StatusChange) error {
	history, err := t.History()
	if err != nil {
		return err
	}
	history = append(history, change)

	raw, err := json.Marshal(history)
	if err != nil {
		return err
	}

	t.StatusHistory = datatypes.JSON(raw)
	t.Status = change.Status
	return nil
}

// AppendAdminAction adds an admin action to the audit list.
func (t *TransactionLog) AppendAdminAction(action AdminAction) error {
	actions, err := t.Actions()
	if err != nil {
		return err
	}
	actions = append(actions, action)

	raw, err := json.Marshal(actions)
	if err != nil {
		return err
	}

	t.AdminActions = datatypes.JSON(raw)
	return nil
}

// History decodes the status-history list.
func (t *TransactionLog) History() ([]StatusChange, error) {
	if len(t.StatusHistory) == 0 {
		return []StatusChange{}, nil
	}
	var history []StatusChange
	if err := json.Unmarshal(t.StatusHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// Actions decodes the admin-actions list.
func (t *TransactionLog) Actions() ([]AdminAction, error) {
	if len(t.AdminActions) == 0 {
		return []AdminAction{}, nil
	}
	var actions []AdminAction
	if err := json.Unmarshal(t.AdminActions, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}

// CommissionSettings is the admin-managed fee configuration. The latest
// active row wins; rates are percentages.
type CommissionSettings struct {
	BaseModel
	PaymentPercent float64 `gorm:"default:10" json:"payment_percent"`
	PayoutPercent  float64 `gorm:"default:0" json:"payout_percent"`
	UpdatedBy      string  `gorm:"type:uuid" json:"updated_by"`
	IsActive       bool    `gorm:"default:true" json:"is_active"`
}
