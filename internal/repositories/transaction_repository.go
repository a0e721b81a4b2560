package repositories

import (
	"errors"
	"time"

	"gigboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound        = errors.New("transaction not found")
	ErrCommissionSettingsNotFound = errors.New("commission settings not found")
)

type TransactionFilter struct {
	UserID   string
	Type     models.TransactionType
	Status   models.TransactionStatus
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	PageSize int
}

type TransactionTotals struct {
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

type TransactionRepository interface {
	Create(entry *models.TransactionLog) error
	FindByID(id string) (*models.TransactionLog, error)
	// SaveHistories persists only the append-only columns and the mirrored
	// status; the immutable core is never updated.
	SaveHistories(entry *models.TransactionLog) error
	FindWithFilter(criteria TransactionFilter) ([]models.TransactionLog, int64, error)
	SumByType(dateFrom, dateTo time.Time) (map[string]TransactionTotals, error)
	CountByStatus() (map[string]int64, error)

	ActiveCommissionSettings() (*models.CommissionSettings, error)
	SaveCommissionSettings(settings *models.CommissionSettings) error
}

type TransactionRepositoryImpl struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &TransactionRepositoryImpl{db: db}
}

func (r *TransactionRepositoryImpl) Create(entry *models.TransactionLog) error {
	return r.db.Create(entry).Error
}

func (r *TransactionRepositoryImpl) FindByID(id string) (*models.TransactionLog, error) {
	var entry models.TransactionLog
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *TransactionRepositoryImpl) SaveHistories(entry *models.TransactionLog) error {
	result := r.db.Model(entry).Updates(map[string]interface{}{
		"status":         entry.Status,
		"status_history": entry.StatusHistory,
		"admin_actions":  entry.AdminActions,
		"updated_at":     time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepositoryImpl) FindWithFilter(criteria TransactionFilter) ([]models.TransactionLog, int64, error) {
	var entries []models.TransactionLog
	query := r.db.Model(&models.TransactionLog{})

	if criteria.UserID != "" {
		query = query.Where("user_id = ?", criteria.UserID)
	}
	if criteria.Type != "" {
		query = query.Where("type = ?", criteria.Type)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.DateFrom != nil {
		query = query.Where("created_at >= ?", criteria.DateFrom)
	}
	if criteria.DateTo != nil {
		query = query.Where("created_at <= ?", criteria.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(criteria.PageSize).Offset((criteria.Page - 1) * criteria.PageSize).
		Find(&entries).Error
	return entries, total, err
}

func (r *TransactionRepositoryImpl) SumByType(dateFrom, dateTo time.Time) (map[string]TransactionTotals, error) {
	type row struct {
		Type   string
		Count  int64
		Amount float64
	}

	var rows []row
	err := r.db.Model(&models.TransactionLog{}).
		Select("type, COUNT(*) as count, COALESCE(SUM(amount), 0) as amount").
		Where("created_at BETWEEN ? AND ?", dateFrom, dateTo).
		Where("status = ?", models.TransactionStatusSucceeded).
		Group("type").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]TransactionTotals, len(rows))
	for _, rw := range rows {
		result[rw.Type] = TransactionTotals{Count: rw.Count, Amount: rw.Amount}
	}
	return result, nil
}

func (r *TransactionRepositoryImpl) CountByStatus() (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}

	var counts []statusCount
	err := r.db.Model(&models.TransactionLog{}).
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

func (r *TransactionRepositoryImpl) ActiveCommissionSettings() (*models.CommissionSettings, error) {
	var settings models.CommissionSettings
	err := r.db.Where("is_active = ?", true).Order("created_at DESC").First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommissionSettingsNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// SaveCommissionSettings deactivates the previous active row and inserts the
// new one, keeping the settings history append-only.
func (r *TransactionRepositoryImpl) SaveCommissionSettings(settings *models.CommissionSettings) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.CommissionSettings{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		settings.IsActive = true
		return tx.Create(settings).Error
	})
}
