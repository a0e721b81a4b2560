package dto

import (
	"time"

	"gigboard_backend/internal/models"
)

type ScheduleInterviewRequest struct {
	ProposalID      string    `json:"proposal_id" binding:"required" validate:"required,uuid"`
	ScheduledAt     time.Time `json:"scheduled_at" binding:"required" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"omitempty,min=10,max=480"`
	MeetingLink     string    `json:"meeting_link,omitempty" validate:"omitempty,url"`
	Location        string    `json:"location,omitempty" validate:"omitempty,max=300"`
	Notes           string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type UpdateInterviewRequest struct {
	ScheduledAt     *time.Time              `json:"scheduled_at,omitempty"`
	DurationMinutes *int                    `json:"duration_minutes,omitempty" validate:"omitempty,min=10,max=480"`
	MeetingLink     *string                 `json:"meeting_link,omitempty" validate:"omitempty,url"`
	Location        *string                 `json:"location,omitempty" validate:"omitempty,max=300"`
	Notes           *string                 `json:"notes,omitempty" validate:"omitempty,max=2000"`
	Status          *models.InterviewStatus `json:"status,omitempty" validate:"omitempty,oneof=scheduled completed cancelled no_show"`
}

type InterviewListResponse struct {
	Interviews []models.Interview `json:"interviews"`
	PageMeta
}
