package dto

import (
	"time"

	"gigboard_backend/internal/models"
)

type AdminCreateUserRequest struct {
	Email     string          `json:"email" binding:"required" validate:"required,email"`
	Password  string          `json:"password" binding:"required" validate:"required,min=8"`
	Role      models.UserRole `json:"role" binding:"required" validate:"required,oneof=talent manager admin"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
}

// AdminUpdateUserRequest is an explicit patch: only non-nil fields are
// applied, and the mutable set is statically known.
type AdminUpdateUserRequest struct {
	FirstName  *string            `json:"first_name,omitempty"`
	LastName   *string            `json:"last_name,omitempty"`
	Role       *models.UserRole   `json:"role,omitempty" validate:"omitempty,oneof=talent manager admin"`
	Status     *models.UserStatus `json:"status,omitempty" validate:"omitempty,oneof=pending active suspended banned"`
	IsVerified *bool              `json:"is_verified,omitempty"`
}

type UserListQuery struct {
	Role     string `form:"role" validate:"omitempty,oneof=talent manager admin"`
	Status   string `form:"status" validate:"omitempty,oneof=pending active suspended banned"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type UserListResponse struct {
	Users []models.User `json:"users"`
	PageMeta
}

// BulkUserActionRequest applies one action to many users. Execution is
// best-effort per item by design; failures are collected, not fatal.
type BulkUserActionRequest struct {
	UserIDs []string `json:"user_ids" binding:"required" validate:"required,min=1"`
	Action  string   `json:"action" binding:"required" validate:"required,oneof=activate deactivate suspend ban"`
}

type BulkActionError struct {
	UserID string `json:"user_id"`
	Error  string `json:"error"`
}

type BulkActionResult struct {
	Success int               `json:"success"`
	Failed  int               `json:"failed"`
	Errors  []BulkActionError `json:"errors,omitempty"`
}

// --- Archive (soft delete / restore) ---

type SoftDeleteRequest struct {
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

type SoftDeleteResult struct {
	ArchivedID  string `json:"archived_id"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type RestoreResult struct {
	UserID      string          `json:"user_id"`
	Email       string          `json:"email"`
	Role        models.UserRole `json:"role"`
	DisplayName string          `json:"display_name"`
}

type ArchiveListQuery struct {
	Role     string `form:"role" validate:"omitempty,oneof=talent manager"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type ArchiveListResponse struct {
	Archived []models.ArchivedUser `json:"archived"`
	PageMeta
}

type ArchivedUserSummary struct {
	ID                string          `json:"id"`
	OriginalUserID    string          `json:"original_user_id"`
	Email             string          `json:"email"`
	Role              models.UserRole `json:"role"`
	DeletionReason    string          `json:"deletion_reason"`
	DeletedBy         string          `json:"deleted_by"`
	DeletedAt         time.Time       `json:"deleted_at"`
	OriginalCreatedAt time.Time       `json:"original_created_at"`
}
