package repositories

import (
	"errors"
	"time"

	"gigboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrMessageNotFound      = errors.New("message not found")
)

type ConversationRepository interface {
	FindOrCreate(talentUserID, managerUserID string, jobID *string) (*models.Conversation, error)
	FindByID(id string) (*models.Conversation, error)
	ListByUser(userID string, page, pageSize int) ([]models.Conversation, int64, error)
	CreateMessage(message *models.Message) error
	ListMessages(conversationID string, page, pageSize int) ([]models.Message, int64, error)
	MarkRead(conversationID, readerID string) error
	UnreadCount(conversationID, readerID string) (int64, error)
}

type ConversationRepositoryImpl struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &ConversationRepositoryImpl{db: db}
}

func (r *ConversationRepositoryImpl) FindOrCreate(talentUserID, managerUserID string, jobID *string) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.
		Where("talent_user_id = ? AND manager_user_id = ?", talentUserID, managerUserID).
		First(&conversation).Error
	if err == nil {
		return &conversation, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	conversation = models.Conversation{
		TalentUserID:  talentUserID,
		ManagerUserID: managerUserID,
		JobID:         jobID,
	}
	if err := r.db.Create(&conversation).Error; err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *ConversationRepositoryImpl) FindByID(id string) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.First(&conversation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *ConversationRepositoryImpl) ListByUser(userID string, page, pageSize int) ([]models.Conversation, int64, error) {
	var conversations []models.Conversation
	query := r.db.Model(&models.Conversation{}).
		Where("talent_user_id = ? OR manager_user_id = ?", userID, userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("updated_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&conversations).Error
	return conversations, total, err
}

func (r *ConversationRepositoryImpl) CreateMessage(message *models.Message) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		// Bump the thread so conversation listings sort by activity.
		return tx.Model(&models.Conversation{}).
			Where("id = ?", message.ConversationID).
			Update("updated_at", time.Now()).Error
	})
}

func (r *ConversationRepositoryImpl) ListMessages(conversationID string, page, pageSize int) ([]models.Message, int64, error) {
	var messages []models.Message
	query := r.db.Model(&models.Message{}).Where("conversation_id = ?", conversationID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&messages).Error
	return messages, total, err
}

// MarkRead stamps every unread message not sent by the reader.
func (r *ConversationRepositoryImpl) MarkRead(conversationID, readerID string) error {
	return r.db.Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id != ? AND read_at IS NULL", conversationID, readerID).
		Update("read_at", time.Now()).Error
}

func (r *ConversationRepositoryImpl) UnreadCount(conversationID, readerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id != ? AND read_at IS NULL", conversationID, readerID).
		Count(&count).Error
	return count, err
}
