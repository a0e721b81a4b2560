package services

import (
	"context"
	"errors"

	"gigboard_backend/internal/logger"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"
)

type InterviewService struct {
	interviewRepo repositories.InterviewRepository
	proposalRepo  repositories.ProposalRepository
	profileRepo   repositories.ProfileRepository
	notifications *NotificationService
}

func NewInterviewService(
	interviewRepo repositories.InterviewRepository,
	proposalRepo repositories.ProposalRepository,
	profileRepo repositories.ProfileRepository,
	notifications *NotificationService,
) *InterviewService {
	return &InterviewService{
		interviewRepo: interviewRepo,
		proposalRepo:  proposalRepo,
		profileRepo:   profileRepo,
		notifications: notifications,
	}
}

// Schedule creates an interview for a proposal on a job the manager owns
// and moves the proposal into the interview status.
func (s *InterviewService) Schedule(ctx context.Context, managerUserID string, req dto.ScheduleInterviewRequest) (*models.Interview, error) {
	managerProfile, err := s.profileRepo.FindManagerByUserID(managerUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotJobOwner
		}
		return nil, apperrors.StorageError(err)
	}

	proposal, err := s.proposalRepo.FindByID(req.ProposalID)
	if err != nil {
		if errors.Is(err, repositories.ErrProposalNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	if proposal.Job == nil || proposal.Job.ManagerProfileID != managerProfile.ID {
		return nil, apperrors.ErrNotJobOwner
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = 30
	}

	interview := &models.Interview{
		ProposalID:       proposal.ID,
		JobID:            proposal.JobID,
		TalentProfileID:  proposal.TalentProfileID,
		ManagerProfileID: managerProfile.ID,
		ScheduledAt:      req.ScheduledAt,
		DurationMinutes:  duration,
		MeetingLink:      req.MeetingLink,
		Location:         req.Location,
		Notes:            req.Notes,
		Status:           models.InterviewStatusScheduled,
	}
	// Interview and proposal status move together or not at all.
	if err := s.interviewRepo.Schedule(interview, models.ProposalStatusInterview); err != nil {
		if errors.Is(err, repositories.ErrProposalNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	if proposal.TalentProfile != nil {
		s.notifications.InterviewScheduled(ctx, proposal.TalentProfile.UserID, interview)
	}

	logger.CtxInfo(ctx, "interview scheduled", "interview_id", interview.ID, "proposal_id", proposal.ID)
	return interview, nil
}

func (s *InterviewService) Update(managerUserID, interviewID string, req dto.UpdateInterviewRequest) (*models.Interview, error) {
	managerProfile, err := s.profileRepo.FindManagerByUserID(managerUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrInsufficientPermissions
		}
		return nil, apperrors.StorageError(err)
	}

	interview, err := s.Get(interviewID)
	if err != nil {
		return nil, err
	}
	if interview.ManagerProfileID != managerProfile.ID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.ScheduledAt != nil {
		interview.ScheduledAt = *req.ScheduledAt
	}
	if req.DurationMinutes != nil {
		interview.DurationMinutes = *req.DurationMinutes
	}
	if req.MeetingLink != nil {
		interview.MeetingLink = *req.MeetingLink
	}
	if req.Location != nil {
		interview.Location = *req.Location
	}
	if req.Notes != nil {
		interview.Notes = *req.Notes
	}
	if req.Status != nil {
		interview.Status = *req.Status
	}

	if err := s.interviewRepo.Update(interview); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return interview, nil
}

func (s *InterviewService) Get(interviewID string) (*models.Interview, error) {
	interview, err := s.interviewRepo.FindByID(interviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return interview, nil
}

func (s *InterviewService) ListForTalent(talentUserID string, page, pageSize int) (*dto.InterviewListResponse, error) {
	profile, err := s.profileRepo.FindTalentByUserID(talentUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	interviews, total, err := s.interviewRepo.ListByTalent(profile.ID, page, pageSize)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return &dto.InterviewListResponse{
		Interviews: interviews,
		PageMeta:   dto.NewPageMeta(total, page, pageSize),
	}, nil
}

func (s *InterviewService) ListForManager(managerUserID string, page, pageSize int) (*dto.InterviewListResponse, error) {
	profile, err := s.profileRepo.FindManagerByUserID(managerUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	interviews, total, err := s.interviewRepo.ListByManager(profile.ID, page, pageSize)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return &dto.InterviewListResponse{
		Interviews: interviews,
		PageMeta:   dto.NewPageMeta(total, page, pageSize),
	}, nil
}
