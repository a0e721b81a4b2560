package services

import (
	"errors"
	"time"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"
)

type DiscountService struct {
	discountRepo repositories.DiscountRepository
}

func NewDiscountService(discountRepo repositories.DiscountRepository) *DiscountService {
	return &DiscountService{discountRepo: discountRepo}
}

func (s *DiscountService) Create(req dto.CreateDiscountRequest) (*models.Discount, error) {
	if req.Type == models.DiscountTypePercent && req.Value > 100 {
		return nil, apperrors.ErrInvalidOperation("discount", "Percent discounts cannot exceed 100")
	}

	discount := &models.Discount{
		Code:       req.Code,
		Type:       req.Type,
		Value:      req.Value,
		ValidFrom:  req.ValidFrom,
		ValidUntil: req.ValidUntil,
		UsageLimit: req.UsageLimit,
		IsActive:   true,
	}
	if err := s.discountRepo.Create(discount); err != nil {
		if errors.Is(err, repositories.ErrDiscountExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return discount, nil
}

func (s *DiscountService) Update(id string, req dto.UpdateDiscountRequest) (*models.Discount, error) {
	discount, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Value != nil {
		discount.Value = *req.Value
	}
	if req.ValidFrom != nil {
		discount.ValidFrom = *req.ValidFrom
	}
	if req.ValidUntil != nil {
		discount.ValidUntil = *req.ValidUntil
	}
	if req.UsageLimit != nil {
		discount.UsageLimit = *req.UsageLimit
	}
	if req.IsActive != nil {
		discount.IsActive = *req.IsActive
	}

	if err := s.discountRepo.Update(discount); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return discount, nil
}

func (s *DiscountService) Get(id string) (*models.Discount, error) {
	discount, err := s.discountRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrDiscountNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return discount, nil
}

func (s *DiscountService) Delete(id string) error {
	if err := s.discountRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrDiscountNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.StorageError(err)
	}
	return nil
}

func (s *DiscountService) List(page, pageSize int) ([]models.Discount, int64, error) {
	discounts, total, err := s.discountRepo.List(page, pageSize)
	if err != nil {
		return nil, 0, apperrors.StorageError(err)
	}
	return discounts, total, nil
}

// Resolve returns the discount for a code if it is currently usable.
func (s *DiscountService) Resolve(code string) (*models.Discount, error) {
	discount, err := s.discountRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, repositories.ErrDiscountNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	if !discount.Usable(time.Now()) {
		return nil, apperrors.ErrDiscountNotApplicable
	}
	return discount, nil
}

// Redeem counts one use of the discount.
func (s *DiscountService) Redeem(discount *models.Discount) error {
	if err := s.discountRepo.IncrementUsage(discount.ID); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}
