package repositories

import (
	"errors"
	"time"

	"gigboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInterviewNotFound = errors.New("interview not found")

type InterviewRepository interface {
	Create(interview *models.Interview) error
	// Schedule creates the interview and moves its proposal to the given
	// status in one transaction; neither lands without the other.
	Schedule(interview *models.Interview, proposalStatus models.ProposalStatus) error
	FindByID(id string) (*models.Interview, error)
	Update(interview *models.Interview) error
	ListByTalent(talentProfileID string, page, pageSize int) ([]models.Interview, int64, error)
	ListByManager(managerProfileID string, page, pageSize int) ([]models.Interview, int64, error)
}

type InterviewRepositoryImpl struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &InterviewRepositoryImpl{db: db}
}

func (r *InterviewRepositoryImpl) Create(interview *models.Interview) error {
	return r.db.Create(interview).Error
}

func (r *InterviewRepositoryImpl) Schedule(interview *models.Interview, proposalStatus models.ProposalStatus) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(interview).Error; err != nil {
			return err
		}
		result := tx.Model(&models.Proposal{}).Where("id = ?", interview.ProposalID).
			Updates(map[string]interface{}{"status": proposalStatus, "updated_at": time.Now()})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProposalNotFound
		}
		return nil
	})
}

func (r *InterviewRepositoryImpl) FindByID(id string) (*models.Interview, error) {
	var interview models.Interview
	err := r.db.Preload("Proposal").Preload("Proposal.Job").First(&interview, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepositoryImpl) Update(interview *models.Interview) error {
	result := r.db.Model(interview).Updates(map[string]interface{}{
		"scheduled_at":     interview.ScheduledAt,
		"duration_minutes": interview.DurationMinutes,
		"meeting_link":     interview.MeetingLink,
		"location":         interview.Location,
		"notes":            interview.Notes,
		"status":           interview.Status,
		"updated_at":       time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

func (r *InterviewRepositoryImpl) ListByTalent(talentProfileID string, page, pageSize int) ([]models.Interview, int64, error) {
	return r.list("talent_profile_id = ?", talentProfileID, page, pageSize)
}

func (r *InterviewRepositoryImpl) ListByManager(managerProfileID string, page, pageSize int) ([]models.Interview, int64, error) {
	return r.list("manager_profile_id = ?", managerProfileID, page, pageSize)
}

func (r *InterviewRepositoryImpl) list(cond string, arg string, page, pageSize int) ([]models.Interview, int64, error) {
	var interviews []models.Interview
	query := r.db.Model(&models.Interview{}).Where(cond, arg)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Proposal").Preload("Proposal.Job").
		Order("scheduled_at DESC").Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&interviews).Error
	return interviews, total, err
}
