package services

import (
	"encoding/json"
	"errors"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type JobService struct {
	jobRepo     repositories.JobRepository
	profileRepo repositories.ProfileRepository
}

func NewJobService(jobRepo repositories.JobRepository, profileRepo repositories.ProfileRepository) *JobService {
	return &JobService{jobRepo: jobRepo, profileRepo: profileRepo}
}

func (s *JobService) Create(managerUserID string, req dto.CreateJobRequest) (*models.Job, error) {
	profile, err := s.managerProfile(managerUserID)
	if err != nil {
		return nil, err
	}

	status := models.JobStatusDraft
	if req.Publish {
		status = models.JobStatusOpen
	}

	job := &models.Job{
		ManagerProfileID: profile.ID,
		Title:            req.Title,
		Description:      req.Description,
		BudgetMin:        req.BudgetMin,
		BudgetMax:        req.BudgetMax,
		City:             req.City,
		IsRemote:         req.IsRemote,
		Status:           status,
	}
	if len(req.RequiredSkills) > 0 {
		raw, err := json.Marshal(req.RequiredSkills)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		job.RequiredSkills = datatypes.JSON(raw)
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return job, nil
}

func (s *JobService) Get(id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return job, nil
}

// View is the public read; it bumps the view counter.
func (s *JobService) View(id string) (*models.Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	_ = s.jobRepo.IncrementViews(id)
	return job, nil
}

func (s *JobService) Update(managerUserID, jobID string, req dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.ownedJob(managerUserID, jobID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.BudgetMin != nil {
		job.BudgetMin = *req.BudgetMin
	}
	if req.BudgetMax != nil {
		job.BudgetMax = *req.BudgetMax
	}
	if req.City != nil {
		job.City = *req.City
	}
	if req.IsRemote != nil {
		job.IsRemote = *req.IsRemote
	}
	if req.RequiredSkills != nil {
		raw, err := json.Marshal(req.RequiredSkills)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		job.RequiredSkills = datatypes.JSON(raw)
	}
	if req.Status != nil {
		job.Status = *req.Status
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return job, nil
}

func (s *JobService) Delete(managerUserID, jobID string) error {
	if _, err := s.ownedJob(managerUserID, jobID); err != nil {
		return err
	}
	if err := s.jobRepo.Delete(jobID); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}

// List is the public board: only open jobs are returned.
func (s *JobService) List(query dto.JobListQuery) (*dto.JobListResponse, error) {
	criteria := repositories.JobFilter{
		Status:   models.JobStatusOpen,
		City:     query.City,
		IsRemote: query.IsRemote,
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	return s.list(criteria)
}

// ListMine returns every job of the manager regardless of status.
func (s *JobService) ListMine(managerUserID string, query dto.JobListQuery) (*dto.JobListResponse, error) {
	profile, err := s.managerProfile(managerUserID)
	if err != nil {
		return nil, err
	}

	criteria := repositories.JobFilter{
		ManagerProfileID: profile.ID,
		Status:           models.JobStatus(query.Status),
		Search:           query.Search,
		Page:             query.Page,
		PageSize:         query.PageSize,
	}
	return s.list(criteria)
}

func (s *JobService) list(criteria repositories.JobFilter) (*dto.JobListResponse, error) {
	jobs, total, err := s.jobRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return &dto.JobListResponse{
		Jobs:     jobs,
		PageMeta: dto.NewPageMeta(total, criteria.Page, criteria.PageSize),
	}, nil
}

func (s *JobService) managerProfile(userID string) (*models.ManagerProfile, error) {
	profile, err := s.profileRepo.FindManagerByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return profile, nil
}

func (s *JobService) ownedJob(managerUserID, jobID string) (*models.Job, error) {
	profile, err := s.managerProfile(managerUserID)
	if err != nil {
		return nil, err
	}

	job, err := s.Get(jobID)
	if err != nil {
		return nil, err
	}
	if job.ManagerProfileID != profile.ID {
		return nil, apperrors.ErrNotJobOwner
	}
	return job, nil
}
