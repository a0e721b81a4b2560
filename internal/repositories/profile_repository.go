package repositories

import (
	"errors"
	"time"

	"gigboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	CreateTalent(profile *models.TalentProfile) error
	CreateManager(profile *models.ManagerProfile) error
	FindTalentByID(id string) (*models.TalentProfile, error)
	FindTalentByUserID(userID string) (*models.TalentProfile, error)
	FindManagerByID(id string) (*models.ManagerProfile, error)
	FindManagerByUserID(userID string) (*models.ManagerProfile, error)
	UpdateTalent(profile *models.TalentProfile) error
	UpdateManager(profile *models.ManagerProfile) error
	ReplaceSkills(profile *models.TalentProfile, skillNames []string) error
	IncrementTalentViews(id string) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) CreateTalent(profile *models.TalentProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) CreateManager(profile *models.ManagerProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindTalentByID(id string) (*models.TalentProfile, error) {
	var profile models.TalentProfile
	err := r.db.Preload("Skills").First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindTalentByUserID(userID string) (*models.TalentProfile, error) {
	var profile models.TalentProfile
	err := r.db.Preload("Skills").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindManagerByID(id string) (*models.ManagerProfile, error) {
	var profile models.ManagerProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindManagerByUserID(userID string) (*models.ManagerProfile, error) {
	var profile models.ManagerProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateTalent(profile *models.TalentProfile) error {
	result := r.db.Model(profile).Updates(map[string]interface{}{
		"display_name": profile.DisplayName,
		"bio":          profile.Bio,
		"hourly_rate":  profile.HourlyRate,
		"availability": profile.Availability,
		"city":         profile.City,
		"languages":    profile.Languages,
		"is_public":    profile.IsPublic,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) UpdateManager(profile *models.ManagerProfile) error {
	result := r.db.Model(profile).Updates(map[string]interface{}{
		"company_name":   profile.CompanyName,
		"company_type":   profile.CompanyType,
		"contact_person": profile.ContactPerson,
		"phone":          profile.Phone,
		"website":        profile.Website,
		"city":           profile.City,
		"is_verified":    profile.IsVerified,
		"updated_at":     time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// ReplaceSkills swaps the talent's skill set, creating missing skill rows.
func (r *ProfileRepositoryImpl) ReplaceSkills(profile *models.TalentProfile, skillNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		skills := make([]models.Skill, 0, len(skillNames))
		for _, name := range skillNames {
			var skill models.Skill
			if err := tx.Where("name = ?", name).FirstOrCreate(&skill, models.Skill{Name: name}).Error; err != nil {
				return err
			}
			skills = append(skills, skill)
		}

		return tx.Model(profile).Association("Skills").Replace(skills)
	})
}

func (r *ProfileRepositoryImpl) IncrementTalentViews(id string) error {
	return r.db.Model(&models.TalentProfile{}).Where("id = ?", id).
		UpdateColumn("profile_views", gorm.Expr("profile_views + 1")).Error
}
