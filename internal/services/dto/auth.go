package dto

import "gigboard_backend/internal/models"

type RegisterRequest struct {
	Email     string          `json:"email" binding:"required" validate:"required,email"`
	Password  string          `json:"password" binding:"required" validate:"required,min=8"`
	Role      models.UserRole `json:"role" binding:"required" validate:"required,oneof=talent manager"`
	FirstName string          `json:"first_name" validate:"max=100"`
	LastName  string          `json:"last_name" validate:"max=100"`

	// Role-specific optional fields applied to the initial profile.
	DisplayName string `json:"display_name,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	City        string `json:"city,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *models.User `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required" validate:"required"`
	NewPassword     string `json:"new_password" binding:"required" validate:"required,min=8"`
}

type RequestPasswordResetRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required" validate:"required"`
	NewPassword string `json:"new_password" binding:"required" validate:"required,min=8"`
}
