package services

import (
	"errors"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"
)

type PackageService struct {
	packageRepo repositories.PackageRepository
	profileRepo repositories.ProfileRepository
}

func NewPackageService(packageRepo repositories.PackageRepository, profileRepo repositories.ProfileRepository) *PackageService {
	return &PackageService{packageRepo: packageRepo, profileRepo: profileRepo}
}

func (s *PackageService) Create(talentUserID string, req dto.CreatePackageRequest) (*models.PricingPackage, error) {
	profile, err := s.talentProfile(talentUserID)
	if err != nil {
		return nil, err
	}

	deliveryDays := req.DeliveryDays
	if deliveryDays == 0 {
		deliveryDays = 7
	}

	pkg := &models.PricingPackage{
		TalentProfileID: profile.ID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DeliveryDays:    deliveryDays,
		Revisions:       req.Revisions,
		IsActive:        true,
	}
	if err := s.packageRepo.Create(pkg); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return pkg, nil
}

func (s *PackageService) Update(talentUserID, packageID string, req dto.UpdatePackageRequest) (*models.PricingPackage, error) {
	pkg, err := s.owned(talentUserID, packageID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.Price != nil {
		pkg.Price = *req.Price
	}
	if req.DeliveryDays != nil {
		pkg.DeliveryDays = *req.DeliveryDays
	}
	if req.Revisions != nil {
		pkg.Revisions = *req.Revisions
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}

	if err := s.packageRepo.Update(pkg); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return pkg, nil
}

func (s *PackageService) Delete(talentUserID, packageID string) error {
	if _, err := s.owned(talentUserID, packageID); err != nil {
		return err
	}
	if err := s.packageRepo.Delete(packageID); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}

func (s *PackageService) Get(packageID string) (*models.PricingPackage, error) {
	pkg, err := s.packageRepo.FindByID(packageID)
	if err != nil {
		if errors.Is(err, repositories.ErrPackageNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return pkg, nil
}

// ListByTalent returns only active packages; the owner listing shows all.
func (s *PackageService) ListByTalent(talentProfileID string, includeInactive bool) ([]models.PricingPackage, error) {
	packages, err := s.packageRepo.ListByTalent(talentProfileID, !includeInactive)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return packages, nil
}

func (s *PackageService) ListMine(talentUserID string) ([]models.PricingPackage, error) {
	profile, err := s.talentProfile(talentUserID)
	if err != nil {
		return nil, err
	}
	return s.ListByTalent(profile.ID, true)
}

func (s *PackageService) owned(talentUserID, packageID string) (*models.PricingPackage, error) {
	profile, err := s.talentProfile(talentUserID)
	if err != nil {
		return nil, err
	}

	pkg, err := s.Get(packageID)
	if err != nil {
		return nil, err
	}
	if pkg.TalentProfileID != profile.ID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return pkg, nil
}

func (s *PackageService) talentProfile(userID string) (*models.TalentProfile, error) {
	profile, err := s.profileRepo.FindTalentByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return profile, nil
}
