package repositories

import (
	"errors"
	"time"

	"gigboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProposalNotFound = errors.New("proposal not found")
	ErrProposalExists   = errors.New("proposal already exists for this job and talent")
)

type ProposalRepository interface {
	Create(proposal *models.Proposal) error
	FindByID(id string) (*models.Proposal, error)
	UpdateStatus(id string, status models.ProposalStatus) error
	ListByTalent(talentProfileID string, page, pageSize int) ([]models.Proposal, int64, error)
	ListByJob(jobID string, page, pageSize int) ([]models.Proposal, int64, error)
	CountByStatus() (map[string]int64, error)
}

type ProposalRepositoryImpl struct {
	db *gorm.DB
}

func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &ProposalRepositoryImpl{db: db}
}

// Create inserts the proposal. The (job, talent) pair is guarded twice: a
// pre-check for a friendly error and the composite unique index for the
// concurrent case.
func (r *ProposalRepositoryImpl) Create(proposal *models.Proposal) error {
	var count int64
	err := r.db.Model(&models.Proposal{}).
		Where("job_id = ? AND talent_profile_id = ?", proposal.JobID, proposal.TalentProfileID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrProposalExists
	}

	if err := r.db.Create(proposal).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrProposalExists
		}
		return err
	}
	return nil
}

func (r *ProposalRepositoryImpl) FindByID(id string) (*models.Proposal, error) {
	var proposal models.Proposal
	err := r.db.Preload("Job").Preload("TalentProfile").First(&proposal, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}
	return &proposal, nil
}

func (r *ProposalRepositoryImpl) UpdateStatus(id string, status models.ProposalStatus) error {
	result := r.db.Model(&models.Proposal{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProposalNotFound
	}
	return nil
}

func (r *ProposalRepositoryImpl) ListByTalent(talentProfileID string, page, pageSize int) ([]models.Proposal, int64, error) {
	var proposals []models.Proposal
	query := r.db.Model(&models.Proposal{}).Where("talent_profile_id = ?", talentProfileID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Job").
		Order("created_at DESC").Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&proposals).Error
	return proposals, total, err
}

func (r *ProposalRepositoryImpl) ListByJob(jobID string, page, pageSize int) ([]models.Proposal, int64, error) {
	var proposals []models.Proposal
	query := r.db.Model(&models.Proposal{}).Where("job_id = ?", jobID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("TalentProfile").Preload("TalentProfile.Skills").
		Order("created_at DESC").Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&proposals).Error
	return proposals, total, err
}

func (r *ProposalRepositoryImpl) CountByStatus() (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}

	var counts []statusCount
	err := r.db.Model(&models.Proposal{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Find(&counts).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(counts))
	for _, sc := range counts {
		result[sc.Status] = sc.Count
	}
	return result, nil
}
