package repositories

import (
	"errors"
	"time"

	"gigboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobFilter struct {
	ManagerProfileID string
	Status           models.JobStatus
	City             string
	IsRemote         *bool
	Search           string
	Page             int
	PageSize         int
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	Update(job *models.Job) error
	Delete(id string) error
	FindWithFilter(criteria JobFilter) ([]models.Job, int64, error)
	IncrementViews(id string) error
	CountByStatus() (map[string]int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("ManagerProfile").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	result := r.db.Model(job).Updates(map[string]interface{}{
		"title":           job.Title,
		"description":     job.Description,
		"budget_min":      job.BudgetMin,
		"budget_max":      job.BudgetMax,
		"required_skills": job.RequiredSkills,
		"city":            job.City,
		"is_remote":       job.IsRemote,
		"status":          job.Status,
		"updated_at":      time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) FindWithFilter(criteria JobFilter) ([]models.Job, int64, error) {
	var jobs []models.Job
	query := r.db.Model(&models.Job{})

	if criteria.ManagerProfileID != "" {
		query = query.Where("manager_profile_id = ?", criteria.ManagerProfileID)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.City != "" {
		query = query.Where("city = ?", criteria.City)
	}
	if criteria.IsRemote != nil {
		query = query.Where("is_remote = ?", *criteria.IsRemote)
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Preload("ManagerProfile").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error

	return jobs, total, err
}

func (r *JobRepositoryImpl) IncrementViews(id string) error {
	return r.db.Model(&models.Job{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *JobRepositoryImpl) CountByStatus() (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}

	var counts []statusCount
	err := r.db.Model(&models.Job{}).
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
