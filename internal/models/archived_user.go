package models

import (
	"time"

	"gorm.io/datatypes"
)

// ArchivedUser is the point-in-time snapshot written by a soft delete.
// UserData and ProfileData hold full serialized copies of the live rows so a
// restore can reconstruct the account exactly; the top-level identity columns
// duplicate the hot fields for listing and collision checks without
// unmarshalling the snapshot.
type ArchivedUser struct {
	BaseModel
	OriginalUserID    string         `gorm:"type:uuid;not null;index" json:"original_user_id"`
	Email             string         `gorm:"not null;index" json:"email"`
	FirstName         string         `json:"first_name"`
	LastName          string         `json:"last_name"`
	Role              UserRole       `gorm:"type:varchar(20);not null" json:"role"`
	ProfileImage      string         `json:"profile_image"`
	UserData          datatypes.JSON `gorm:"type:jsonb;not null" json:"user_data"`
	ProfileData       datatypes.JSON `gorm:"type:jsonb" json:"profile_data,omitempty"`
	DeletionReason    string         `json:"deletion_reason"`
	DeletedBy         string         `gorm:"type:uuid" json:"deleted_by"`
	OriginalCreatedAt time.Time      `gorm:"not null" json:"original_created_at"`
}
