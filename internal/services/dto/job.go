package dto

import "gigboard_backend/internal/models"

type CreateJobRequest struct {
	Title          string   `json:"title" binding:"required" validate:"required,min=3,max=200"`
	Description    string   `json:"description" binding:"required" validate:"required,min=10"`
	BudgetMin      float64  `json:"budget_min" validate:"gte=0"`
	BudgetMax      float64  `json:"budget_max" validate:"gtefield=BudgetMin"`
	RequiredSkills []string `json:"required_skills,omitempty" validate:"omitempty,max=20"`
	City           string   `json:"city,omitempty"`
	IsRemote       bool     `json:"is_remote"`
	Publish        bool     `json:"publish"`
}

type UpdateJobRequest struct {
	Title          *string           `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description    *string           `json:"description,omitempty" validate:"omitempty,min=10"`
	BudgetMin      *float64          `json:"budget_min,omitempty" validate:"omitempty,gte=0"`
	BudgetMax      *float64          `json:"budget_max,omitempty" validate:"omitempty,gte=0"`
	RequiredSkills []string          `json:"required_skills,omitempty"`
	City           *string           `json:"city,omitempty"`
	IsRemote       *bool             `json:"is_remote,omitempty"`
	Status         *models.JobStatus `json:"status,omitempty" validate:"omitempty,oneof=draft open closed cancelled"`
}

type JobListQuery struct {
	Status    string  `form:"status" validate:"omitempty,oneof=draft open closed cancelled"`
	City      string  `form:"city"`
	IsRemote  *bool   `form:"is_remote"`
	BudgetMin float64 `form:"budget_min"`
	BudgetMax float64 `form:"budget_max"`
	Search    string  `form:"search"`
	Page      int     `form:"page"`
	PageSize  int     `form:"page_size"`
}

type JobListResponse struct {
	Jobs []models.Job `json:"jobs"`
	PageMeta
}
