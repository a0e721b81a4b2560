package services

import (
	"context"
	"encoding/json"
	"fmt"

	"gigboard_backend/internal/logger"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/realtime"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

const (
	NotificationProposalReceived = "proposal_received"
	NotificationProposalStatus   = "proposal_status"
	NotificationInterview        = "interview_scheduled"
	NotificationMessage          = "message_received"
	NotificationInvoiceIssued    = "invoice_issued"
	NotificationInvoicePaid      = "invoice_paid"
	NotificationAccountRestored  = "account_restored"
)

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	publisher        realtime.Publisher
}

func NewNotificationService(notificationRepo repositories.NotificationRepository, publisher realtime.Publisher) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo, publisher: publisher}
}

// Notify persists the notification and pushes it to the user's realtime
// channel. Publish failures are logged, never surfaced; the persisted row is
// the source of truth.
func (s *NotificationService) Notify(ctx context.Context, userID, kind, title, message string, data map[string]interface{}) {
	notification := &models.Notification{
		UserID:  userID,
		Type:    kind,
		Title:   title,
		Message: message,
	}
	if data != nil {
		if raw, err := json.Marshal(data); err == nil {
			notification.Data = datatypes.JSON(raw)
		}
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		logger.CtxWithError(ctx, "failed to persist notification", err, "user_id", userID, "type", kind)
		return
	}

	if err := s.publisher.PublishToUser(ctx, userID, notification); err != nil {
		logger.CtxWithError(ctx, "failed to publish notification", err, "user_id", userID, "type", kind)
	}
}

func (s *NotificationService) List(userID string, query dto.NotificationListQuery) (*dto.NotificationListResponse, error) {
	notifications, total, err := s.notificationRepo.ListByUser(userID, query.UnreadOnly, query.Page, query.PageSize)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	unread, err := s.notificationRepo.UnreadCount(userID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	return &dto.NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
		PageMeta:      dto.NewPageMeta(total, query.Page, query.PageSize),
	}, nil
}

func (s *NotificationService) MarkRead(userID, id string) error {
	if err := s.notificationRepo.MarkRead(userID, id); err != nil {
		if err == repositories.ErrNotificationNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.StorageError(err)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(userID string) error {
	if err := s.notificationRepo.MarkAllRead(userID); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}

func (s *NotificationService) Delete(userID, id string) error {
	if err := s.notificationRepo.Delete(userID, id); err != nil {
		if err == repositories.ErrNotificationNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.StorageError(err)
	}
	return nil
}

// --- Domain event emitters ---

func (s *NotificationService) ProposalReceived(ctx context.Context, managerUserID string, proposal *models.Proposal, jobTitle string) {
	s.Notify(ctx, managerUserID, NotificationProposalReceived,
		"New proposal",
		fmt.Sprintf("You received a new proposal for %q", jobTitle),
		map[string]interface{}{"proposal_id": proposal.ID, "job_id": proposal.JobID})
}

func (s *NotificationService) ProposalStatusChanged(ctx context.Context, talentUserID string, proposal *models.Proposal) {
	s.Notify(ctx, talentUserID, NotificationProposalStatus,
		"Proposal updated",
		fmt.Sprintf("Your proposal status changed to %s", proposal.Status),
		map[string]interface{}{"proposal_id": proposal.ID, "status": proposal.Status})
}

func (s *NotificationService) InterviewScheduled(ctx context.Context, talentUserID string, interview *models.Interview) {
	s.Notify(ctx, talentUserID, NotificationInterview,
		"Interview scheduled",
		fmt.Sprintf("An interview has been scheduled for %s", interview.ScheduledAt.Format("Jan 2, 15:04")),
		map[string]interface{}{"interview_id": interview.ID, "proposal_id": interview.ProposalID})
}

func (s *NotificationService) MessageReceived(ctx context.Context, recipientID string, message *models.Message) {
	s.Notify(ctx, recipientID, NotificationMessage,
		"New message",
		"You have a new message",
		map[string]interface{}{"conversation_id": message.ConversationID, "message_id": message.ID})
}

func (s *NotificationService) InvoiceIssued(ctx context.Context, userID string, invoice *models.Invoice) {
	s.Notify(ctx, userID, NotificationInvoiceIssued,
		"Invoice issued",
		fmt.Sprintf("Invoice %s for %.2f is awaiting payment", invoice.Number, invoice.Total),
		map[string]interface{}{"invoice_id": invoice.ID, "number": invoice.Number})
}

func (s *NotificationService) InvoicePaid(ctx context.Context, userID string, invoice *models.Invoice) {
	s.Notify(ctx, userID, NotificationInvoicePaid,
		"Invoice paid",
		fmt.Sprintf("Invoice %s has been paid", invoice.Number),
		map[string]interface{}{"invoice_id": invoice.ID, "number": invoice.Number})
}
