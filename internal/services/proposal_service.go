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

// ProposalService owns the proposal status machine. Talents submit and
// withdraw; managers move proposals through the remaining states, but only
// on jobs they own.
type ProposalService struct {
	proposalRepo  repositories.ProposalRepository
	jobRepo       repositories.JobRepository
	profileRepo   repositories.ProfileRepository
	notifications *NotificationService
}

func NewProposalService(
	proposalRepo repositories.ProposalRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	notifications *NotificationService,
) *ProposalService {
	return &ProposalService{
		proposalRepo:  proposalRepo,
		jobRepo:       jobRepo,
		profileRepo:   profileRepo,
		notifications: notifications,
	}
}

// Submit creates a pending proposal. A talent gets at most one proposal per
// job; the second attempt fails with a conflict.
func (s *ProposalService) Submit(ctx context.Context, talentUserID string, req dto.CreateProposalRequest) (*models.Proposal, error) {
	profile, err := s.talentProfile(talentUserID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrJobNotOpen
	}

	proposal := &models.Proposal{
		JobID:           job.ID,
		TalentProfileID: profile.ID,
		CoverLetter:     req.CoverLetter,
		BidAmount:       req.BidAmount,
		Status:          models.ProposalStatusPending,
	}
	if err := s.proposalRepo.Create(proposal); err != nil {
		if errors.Is(err, repositories.ErrProposalExists) {
			return nil, apperrors.ErrDuplicateProposal
		}
		return nil, apperrors.StorageError(err)
	}

	if job.ManagerProfile != nil {
		s.notifications.ProposalReceived(ctx, job.ManagerProfile.UserID, proposal, job.Title)
	}

	logger.CtxInfo(ctx, "proposal submitted", "proposal_id", proposal.ID, "job_id", job.ID)
	return proposal, nil
}

// Withdraw is the only talent-side transition and is allowed solely while
// the proposal is still pending.
func (s *ProposalService) Withdraw(ctx context.Context, talentUserID, proposalID string) (*models.Proposal, error) {
	profile, err := s.talentProfile(talentUserID)
	if err != nil {
		return nil, err
	}

	proposal, err := s.get(proposalID)
	if err != nil {
		return nil, err
	}
	if proposal.TalentProfileID != profile.ID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if proposal.Status != models.ProposalStatusPending {
		return nil, apperrors.ErrProposalNotPending
	}

	if err := s.proposalRepo.UpdateStatus(proposal.ID, models.ProposalStatusWithdrawn); err != nil {
		return nil, apperrors.StorageError(err)
	}
	proposal.Status = models.ProposalStatusWithdrawn

	logger.CtxInfo(ctx, "proposal withdrawn", "proposal_id", proposal.ID)
	return proposal, nil
}

// SetStatus applies a manager transition. The target status must come from
// the closed manager set and be reachable from the current one, and the
// manager must own the job the proposal belongs to; on any failure the
// stored status is left untouched.
func (s *ProposalService) SetStatus(ctx context.Context, managerUserID, proposalID string, status models.ProposalStatus) (*models.Proposal, error) {
	if !models.ValidProposalStatuses[status] {
		return nil, apperrors.ErrInvalidStatus("proposal", "Status "+string(status)+" is not a valid transition")
	}

	proposal, err := s.get(proposalID)
	if err != nil {
		return nil, err
	}

	managerProfile, err := s.profileRepo.FindManagerByUserID(managerUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotJobOwner
		}
		return nil, apperrors.StorageError(err)
	}
	if proposal.Job == nil || proposal.Job.ManagerProfileID != managerProfile.ID {
		return nil, apperrors.ErrNotJobOwner
	}

	if !models.ProposalTransitionAllowed(proposal.Status, status) {
		return nil, apperrors.ErrInvalidStatus("proposal",
			"A "+string(proposal.Status)+" proposal cannot move to "+string(status))
	}

	if err := s.proposalRepo.UpdateStatus(proposal.ID, status); err != nil {
		return nil, apperrors.StorageError(err)
	}
	proposal.Status = status

	if proposal.TalentProfile != nil {
		s.notifications.ProposalStatusChanged(ctx, proposal.TalentProfile.UserID, proposal)
	}

	logger.CtxInfo(ctx, "proposal status changed",
		"proposal_id", proposal.ID, "status", status, "by", managerUserID)
	return proposal, nil
}

func (s *ProposalService) Get(proposalID string) (*models.Proposal, error) {
	return s.get(proposalID)
}

func (s *ProposalService) ListMine(talentUserID string, query dto.ProposalListQuery) (*dto.ProposalListResponse, error) {
	profile, err := s.talentProfile(talentUserID)
	if err != nil {
		return nil, err
	}

	proposals, total, err := s.proposalRepo.ListByTalent(profile.ID, query.Page, query.PageSize)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return &dto.ProposalListResponse{
		Proposals: proposals,
		PageMeta:  dto.NewPageMeta(total, query.Page, query.PageSize),
	}, nil
}

// ListForJob returns a job's proposals to its owning manager.
func (s *ProposalService) ListForJob(managerUserID, jobID string, query dto.ProposalListQuery) (*dto.ProposalListResponse, error) {
	managerProfile, err := s.profileRepo.FindManagerByUserID(managerUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotJobOwner
		}
		return nil, apperrors.StorageError(err)
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	if job.ManagerProfileID != managerProfile.ID {
		return nil, apperrors.ErrNotJobOwner
	}

	proposals, total, err := s.proposalRepo.ListByJob(jobID, query.Page, query.PageSize)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return &dto.ProposalListResponse{
		Proposals: proposals,
		PageMeta:  dto.NewPageMeta(total, query.Page, query.PageSize),
	}, nil
}

func (s *ProposalService) get(proposalID string) (*models.Proposal, error) {
	proposal, err := s.proposalRepo.FindByID(proposalID)
	if err != nil {
		if errors.Is(err, repositories.ErrProposalNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return proposal, nil
}

func (s *ProposalService) talentProfile(userID string) (*models.TalentProfile, error) {
	profile, err := s.profileRepo.FindTalentByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return profile, nil
}
