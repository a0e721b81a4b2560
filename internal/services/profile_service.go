package services

import (
	"errors"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"
)

type ProfileService struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, userRepo repositories.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, userRepo: userRepo}
}

func (s *ProfileService) GetTalent(id string) (*models.TalentProfile, error) {
	profile, err := s.profileRepo.FindTalentByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return profile, nil
}

// ViewTalent is the public read; it bumps the view counter and hides
// private profiles.
func (s *ProfileService) ViewTalent(id string) (*models.TalentProfile, error) {
	profile, err := s.GetTalent(id)
	if err != nil {
		return nil, err
	}
	if !profile.IsPublic {
		return nil, apperrors.ErrNotFound(repositories.ErrProfileNotFound)
	}

	_ = s.profileRepo.IncrementTalentViews(id)
	return profile, nil
}

func (s *ProfileService) GetTalentByUser(userID string) (*models.TalentProfile, error) {
	profile, err := s.profileRepo.FindTalentByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return profile, nil
}

func (s *ProfileService) GetManagerByUser(userID string) (*models.ManagerProfile, error) {
	profile, err := s.profileRepo.FindManagerByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return profile, nil
}

func (s *ProfileService) UpdateTalent(userID string, req dto.UpdateTalentProfileRequest) (*models.TalentProfile, error) {
	profile, err := s.GetTalentByUser(userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.HourlyRate != nil {
		profile.HourlyRate = *req.HourlyRate
	}
	if req.Availability != nil {
		profile.Availability = models.Availability(*req.Availability)
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Languages != nil {
		profile.Languages = req.Languages
	}
	if req.IsPublic != nil {
		profile.IsPublic = *req.IsPublic
	}

	if err := s.profileRepo.UpdateTalent(profile); err != nil {
		return nil, apperrors.StorageError(err)
	}

	if req.Skills != nil {
		if err := s.profileRepo.ReplaceSkills(profile, req.Skills); err != nil {
			return nil, apperrors.StorageError(err)
		}
	}
	return profile, nil
}

func (s *ProfileService) UpdateManager(userID string, req dto.UpdateManagerProfileRequest) (*models.ManagerProfile, error) {
	profile, err := s.GetManagerByUser(userID)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.CompanyType != nil {
		profile.CompanyType = *req.CompanyType
	}
	if req.ContactPerson != nil {
		profile.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.City != nil {
		profile.City = *req.City
	}

	if err := s.profileRepo.UpdateManager(profile); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return profile, nil
}
