package repositories

import (
	"errors"

	"gigboard_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrArchiveNotFound = errors.New("archived user not found")

type ArchiveFilter struct {
	Role     models.UserRole
	Search   string
	Page     int
	PageSize int
}

// ArchiveRepository owns the atomic move between live and archived storage.
// Archive and Restore each run inside a single DB transaction so no
// intermediate state is ever observable.
type ArchiveRepository interface {
	// Archive writes the snapshot record and removes the live rows.
	Archive(record *models.ArchivedUser, userID string) error
	// Restore recreates the live rows and removes the snapshot record. The
	// arguments are fully built by the caller: the user carries a freshly
	// generated identifier, the profile keeps its archived one.
	Restore(archivedID string, user *models.User, talent *models.TalentProfile, manager *models.ManagerProfile) error
	FindByID(id string) (*models.ArchivedUser, error)
	Delete(id string) error
	FindWithFilter(criteria ArchiveFilter) ([]models.ArchivedUser, int64, error)
	CountAll() (int64, error)
}

type ArchiveRepositoryImpl struct {
	db *gorm.DB
}

func NewArchiveRepository(db *gorm.DB) ArchiveRepository {
	return &ArchiveRepositoryImpl{db: db}
}

func (r *ArchiveRepositoryImpl) Archive(record *models.ArchivedUser, userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		// The snapshot carries the skill list; the join rows go with the
		// profile and are rebuilt on restore.
		if err := tx.Exec(
			"DELETE FROM talent_skills WHERE talent_profile_id IN (SELECT id FROM talent_profiles WHERE user_id = ?)",
			userID).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.TalentProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.ManagerProfile{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", userID).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// The live row vanished between the read and the delete; roll
			// back the snapshot so a concurrent delete cannot double-archive.
			return ErrUserNotFound
		}
		return nil
	})
}

func (r *ArchiveRepositoryImpl) Restore(archivedID string, user *models.User, talent *models.TalentProfile, manager *models.ManagerProfile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		if talent != nil {
			if err := tx.Omit(clause.Associations).Create(talent).Error; err != nil {
				return err
			}
			if len(talent.Skills) > 0 {
				if err := tx.Model(talent).Association("Skills").Replace(talent.Skills); err != nil {
					return err
				}
			}
		}
		if manager != nil {
			if err := tx.Create(manager).Error; err != nil {
				return err
			}
		}

		result := tx.Where("id = ?", archivedID).Delete(&models.ArchivedUser{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrArchiveNotFound
		}
		return nil
	})
}

func (r *ArchiveRepositoryImpl) FindByID(id string) (*models.ArchivedUser, error) {
	var record models.ArchivedUser
	err := r.db.First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArchiveNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *ArchiveRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.ArchivedUser{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArchiveNotFound
	}
	return nil
}

func (r *ArchiveRepositoryImpl) FindWithFilter(criteria ArchiveFilter) ([]models.ArchivedUser, int64, error) {
	var records []models.ArchivedUser
	query := r.db.Model(&models.ArchivedUser{})

	if criteria.Role != "" {
		query = query.Where("role = ?", criteria.Role)
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", search, search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&records).Error
	return records, total, err
}

func (r *ArchiveRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.ArchivedUser{}).Count(&count).Error
	return count, err
}
