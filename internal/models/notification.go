package models

import (
	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Type    string         `gorm:"type:varchar(50);not null" json:"type"`
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Data    datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"`
	IsRead  bool           `gorm:"default:false;index" json:"is_read"`
}
