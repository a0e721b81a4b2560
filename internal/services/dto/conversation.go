package dto

import "gigboard_backend/internal/models"

type StartConversationRequest struct {
	RecipientID string  `json:"recipient_id" binding:"required" validate:"required,uuid"`
	JobID       *string `json:"job_id,omitempty" validate:"omitempty,uuid"`
	Body        string  `json:"body,omitempty" validate:"omitempty,max=5000"`
}

type SendMessageRequest struct {
	Body string `json:"body" binding:"required" validate:"required,min=1,max=5000"`
}

type ConversationListResponse struct {
	Conversations []models.Conversation `json:"conversations"`
	PageMeta
}

type MessageListResponse struct {
	Messages []models.Message `json:"messages"`
	PageMeta
}
