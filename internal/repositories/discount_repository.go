package repositories

import (
	"errors"
	"strings"
	"time"

	"gigboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrDiscountNotFound = errors.New("discount not found")
	ErrDiscountExists   = errors.New("discount code already exists")
)

type DiscountRepository interface {
	Create(discount *models.Discount) error
	FindByID(id string) (*models.Discount, error)
	FindByCode(code string) (*models.Discount, error)
	Update(discount *models.Discount) error
	Delete(id string) error
	List(page, pageSize int) ([]models.Discount, int64, error)
	IncrementUsage(id string) error
}

type DiscountRepositoryImpl struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) DiscountRepository {
	return &DiscountRepositoryImpl{db: db}
}

// Create stores the code upper-cased so lookups are case-insensitive.
func (r *DiscountRepositoryImpl) Create(discount *models.Discount) error {
	discount.Code = strings.ToUpper(discount.Code)

	var count int64
	if err := r.db.Model(&models.Discount{}).Where("code = ?", discount.Code).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDiscountExists
	}

	return r.db.Create(discount).Error
}

func (r *DiscountRepositoryImpl) FindByID(id string) (*models.Discount, error) {
	var discount models.Discount
	err := r.db.First(&discount, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, err
	}
	return &discount, nil
}

func (r *DiscountRepositoryImpl) FindByCode(code string) (*models.Discount, error) {
	var discount models.Discount
	err := r.db.First(&discount, "code = ?", strings.ToUpper(code)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, err
	}
	return &discount, nil
}

func (r *DiscountRepositoryImpl) Update(discount *models.Discount) error {
	result := r.db.Model(discount).Updates(map[string]interface{}{
		"type":        discount.Type,
		"value":       discount.Value,
		"valid_from":  discount.ValidFrom,
		"valid_until": discount.ValidUntil,
		"usage_limit": discount.UsageLimit,
		"is_active":   discount.IsActive,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDiscountNotFound
	}
	return nil
}

func (r *DiscountRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Discount{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDiscountNotFound
	}
	return nil
}

func (r *DiscountRepositoryImpl) List(page, pageSize int) ([]models.Discount, int64, error) {
	var discounts []models.Discount

	var total int64
	if err := r.db.Model(&models.Discount{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&discounts).Error
	return discounts, total, err
}

func (r *DiscountRepositoryImpl) IncrementUsage(id string) error {
	return r.db.Model(&models.Discount{}).Where("id = ?", id).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1")).Error
}
