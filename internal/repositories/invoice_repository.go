package repositories

import (
	"errors"
	"time"

	"gigboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

type InvoiceFilter struct {
	IssuedToUserID string
	Status         models.InvoiceStatus
	Page           int
	PageSize       int
}

type InvoiceRepository interface {
	Create(invoice *models.Invoice) error
	FindByID(id string) (*models.Invoice, error)
	FindByNumber(number string) (*models.Invoice, error)
	Update(invoice *models.Invoice) error
	// MarkPaid persists the settled invoice and its ledger entry in one
	// transaction; neither lands without the other.
	MarkPaid(invoice *models.Invoice, entry *models.TransactionLog) error
	FindWithFilter(criteria InvoiceFilter) ([]models.Invoice, int64, error)
}

type InvoiceRepositoryImpl struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &InvoiceRepositoryImpl{db: db}
}

func (r *InvoiceRepositoryImpl) Create(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

func (r *InvoiceRepositoryImpl) FindByID(id string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepositoryImpl) FindByNumber(number string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "number = ?", number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepositoryImpl) Update(invoice *models.Invoice) error {
	result := r.db.Model(invoice).Updates(map[string]interface{}{
		"status":     invoice.Status,
		"paid_at":    invoice.PaidAt,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

func (r *InvoiceRepositoryImpl) MarkPaid(invoice *models.Invoice, entry *models.TransactionLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(invoice).Updates(map[string]interface{}{
			"status":     invoice.Status,
			"paid_at":    invoice.PaidAt,
			"updated_at": time.Now(),
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInvoiceNotFound
		}
		return tx.Create(entry).Error
	})
}

func (r *InvoiceRepositoryImpl) FindWithFilter(criteria InvoiceFilter) ([]models.Invoice, int64, error) {
	var invoices []models.Invoice
	query := r.db.Model(&models.Invoice{})

	if criteria.IssuedToUserID != "" {
		query = query.Where("issued_to_user_id = ?", criteria.IssuedToUserID)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(criteria.PageSize).Offset((criteria.Page - 1) * criteria.PageSize).
		Find(&invoices).Error
	return invoices, total, err
}
