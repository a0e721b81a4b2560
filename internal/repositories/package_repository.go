package repositories

import (
	"errors"
	"time"

	"gigboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPackageNotFound = errors.New("pricing package not found")

type PackageRepository interface {
	Create(pkg *models.PricingPackage) error
	FindByID(id string) (*models.PricingPackage, error)
	Update(pkg *models.PricingPackage) error
	Delete(id string) error
	ListByTalent(talentProfileID string, activeOnly bool) ([]models.PricingPackage, error)
}

type PackageRepositoryImpl struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &PackageRepositoryImpl{db: db}
}

func (r *PackageRepositoryImpl) Create(pkg *models.PricingPackage) error {
	return r.db.Create(pkg).Error
}

func (r *PackageRepositoryImpl) FindByID(id string) (*models.PricingPackage, error) {
	var pkg models.PricingPackage
	err := r.db.First(&pkg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepositoryImpl) Update(pkg *models.PricingPackage) error {
	result := r.db.Model(pkg).Updates(map[string]interface{}{
		"name":          pkg.Name,
		"description":   pkg.Description,
		"price":         pkg.Price,
		"delivery_days": pkg.DeliveryDays,
		"revisions":     pkg.Revisions,
		"is_active":     pkg.IsActive,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPackageNotFound
	}
	return nil
}

func (r *PackageRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.PricingPackage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPackageNotFound
	}
	return nil
}

func (r *PackageRepositoryImpl) ListByTalent(talentProfileID string, activeOnly bool) ([]models.PricingPackage, error) {
	var packages []models.PricingPackage
	query := r.db.Where("talent_profile_id = ?", talentProfileID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("price ASC").Find(&packages).Error
	return packages, err
}
