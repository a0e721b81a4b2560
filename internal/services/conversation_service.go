package services

import (
	"context"
	"errors"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"
)

// ConversationService manages two-party threads. A conversation always
// pairs a talent user with a manager user; membership gates every read and
// write.
type ConversationService struct {
	conversationRepo repositories.ConversationRepository
	userRepo         repositories.UserRepository
	notifications    *NotificationService
}

func NewConversationService(
	conversationRepo repositories.ConversationRepository,
	userRepo repositories.UserRepository,
	notifications *NotificationService,
) *ConversationService {
	return &ConversationService{
		conversationRepo: conversationRepo,
		userRepo:         userRepo,
		notifications:    notifications,
	}
}

// Start finds or creates the thread between the sender and recipient and
// optionally posts the first message.
func (s *ConversationService) Start(ctx context.Context, senderID string, req dto.StartConversationRequest) (*models.Conversation, error) {
	sender, err := s.userRepo.FindByID(senderID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	recipient, err := s.userRepo.FindByID(req.RecipientID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	talentID, managerID, err := pairMembers(sender, recipient)
	if err != nil {
		return nil, err
	}

	conversation, err := s.conversationRepo.FindOrCreate(talentID, managerID, req.JobID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	if req.Body != "" {
		if _, err := s.Send(ctx, senderID, conversation.ID, req.Body); err != nil {
			return nil, err
		}
	}
	return conversation, nil
}

// pairMembers orients the two users into the talent and manager slots.
func pairMembers(a, b *models.User) (talentID, managerID string, err error) {
	switch {
	case a.Role == models.UserRoleTalent && b.Role == models.UserRoleManager:
		return a.ID, b.ID, nil
	case a.Role == models.UserRoleManager && b.Role == models.UserRoleTalent:
		return b.ID, a.ID, nil
	default:
		return "", "", apperrors.ErrInvalidOperation("conversation",
			"Conversations connect a talent with a manager")
	}
}

func (s *ConversationService) ListMine(userID string, page, pageSize int) (*dto.ConversationListResponse, error) {
	conversations, total, err := s.conversationRepo.ListByUser(userID, page, pageSize)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return &dto.ConversationListResponse{
		Conversations: conversations,
		PageMeta:      dto.NewPageMeta(total, page, pageSize),
	}, nil
}

// Messages returns a page of the thread and marks the counterpart's
// messages as read.
func (s *ConversationService) Messages(userID, conversationID string, page, pageSize int) (*dto.MessageListResponse, error) {
	if _, err := s.member(userID, conversationID); err != nil {
		return nil, err
	}

	messages, total, err := s.conversationRepo.ListMessages(conversationID, page, pageSize)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	if err := s.conversationRepo.MarkRead(conversationID, userID); err != nil {
		return nil, apperrors.StorageError(err)
	}

	return &dto.MessageListResponse{
		Messages: messages,
		PageMeta: dto.NewPageMeta(total, page, pageSize),
	}, nil
}

func (s *ConversationService) Send(ctx context.Context, userID, conversationID, body string) (*models.Message, error) {
	conversation, err := s.member(userID, conversationID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		ConversationID: conversationID,
		SenderID:       userID,
		Body:           body,
	}
	if err := s.conversationRepo.CreateMessage(message); err != nil {
		return nil, apperrors.StorageError(err)
	}

	s.notifications.MessageReceived(ctx, conversation.OtherMember(userID), message)
	return message, nil
}

func (s *ConversationService) UnreadCount(userID, conversationID string) (int64, error) {
	if _, err := s.member(userID, conversationID); err != nil {
		return 0, err
	}

	count, err := s.conversationRepo.UnreadCount(conversationID, userID)
	if err != nil {
		return 0, apperrors.StorageError(err)
	}
	return count, nil
}

func (s *ConversationService) member(userID, conversationID string) (*models.Conversation, error) {
	conversation, err := s.conversationRepo.FindByID(conversationID)
	if err != nil {
		if errors.Is(err, repositories.ErrConversationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	if !conversation.IsMember(userID) {
		return nil, apperrors.ErrNotConversationMember
	}
	return conversation, nil
}
