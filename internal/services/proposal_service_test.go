package services

import (
	"context"
	"testing"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/realtime"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobRepo struct {
	repositories.JobRepository
	jobs map[string]*models.Job
}

func (f *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	clone := *job
	return &clone, nil
}

type fakeProposalRepo struct {
	repositories.ProposalRepository
	proposals map[string]*models.Proposal
	jobs      *fakeJobRepo
}

func (f *fakeProposalRepo) Create(proposal *models.Proposal) error {
	for _, existing := range f.proposals {
		if existing.JobID == proposal.JobID && existing.TalentProfileID == proposal.TalentProfileID {
			return repositories.ErrProposalExists
		}
	}
	if proposal.ID == "" {
		proposal.ID = uuid.NewString()
	}
	clone := *proposal
	f.proposals[proposal.ID] = &clone
	return nil
}

// FindByID mirrors the production preload of Job and TalentProfile.
func (f *fakeProposalRepo) FindByID(id string) (*models.Proposal, error) {
	proposal, ok := f.proposals[id]
	if !ok {
		return nil, repositories.ErrProposalNotFound
	}
	clone := *proposal
	if job, ok := f.jobs.jobs[proposal.JobID]; ok {
		jobClone := *job
		clone.Job = &jobClone
	}
	return &clone, nil
}

func (f *fakeProposalRepo) UpdateStatus(id string, status models.ProposalStatus) error {
	proposal, ok := f.proposals[id]
	if !ok {
		return repositories.ErrProposalNotFound
	}
	proposal.Status = status
	return nil
}

type fakeNotificationRepo struct {
	repositories.NotificationRepository
	sent []*models.Notification
}

func (f *fakeNotificationRepo) Create(notification *models.Notification) error {
	f.sent = append(f.sent, notification)
	return nil
}

type proposalFixture struct {
	svc           *ProposalService
	proposals     *fakeProposalRepo
	jobs          *fakeJobRepo
	profiles      *fakeProfileRepo
	notifications *fakeNotificationRepo

	talentUserID  string
	talentProfile *models.TalentProfile
	managerUserID string
	openJob       *models.Job
}

func newProposalFixture() *proposalFixture {
	jobs := &fakeJobRepo{jobs: map[string]*models.Job{}}
	proposals := &fakeProposalRepo{proposals: map[string]*models.Proposal{}, jobs: jobs}
	profiles := newFakeProfileRepo()
	notifications := &fakeNotificationRepo{}

	talentUserID := uuid.NewString()
	talentProfile := &models.TalentProfile{ID: uuid.NewString(), UserID: talentUserID}
	profiles.talents[talentUserID] = talentProfile

	managerUserID := uuid.NewString()
	managerProfile := &models.ManagerProfile{ID: uuid.NewString(), UserID: managerUserID}
	profiles.managers[managerUserID] = managerProfile

	openJob := &models.Job{
		ManagerProfileID: managerProfile.ID,
		Title:            "Backend engineer",
		Status:           models.JobStatusOpen,
	}
	openJob.ID = uuid.NewString()
	jobs.jobs[openJob.ID] = openJob

	notificationSvc := NewNotificationService(notifications, realtime.NoopPublisher{})
	svc := NewProposalService(proposals, jobs, profiles, notificationSvc)

	return &proposalFixture{
		svc:           svc,
		proposals:     proposals,
		jobs:          jobs,
		profiles:      profiles,
		notifications: notifications,
		talentUserID:  talentUserID,
		talentProfile: talentProfile,
		managerUserID: managerUserID,
		openJob:       openJob,
	}
}

func (fx *proposalFixture) submit(t *testing.T) *models.Proposal {
	t.Helper()
	proposal, err := fx.svc.Submit(context.Background(), fx.talentUserID, dto.CreateProposalRequest{
		JobID:       fx.openJob.ID,
		CoverLetter: "I have shipped three systems like this one.",
		BidAmount:   2500,
	})
	require.NoError(t, err)
	return proposal
}

func TestSubmitRejectsDuplicate(t *testing.T) {
	fx := newProposalFixture()
	fx.submit(t)

	_, err := fx.svc.Submit(context.Background(), fx.talentUserID, dto.CreateProposalRequest{
		JobID:       fx.openJob.ID,
		CoverLetter: "Second try for the same job.",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateProposal)
	assert.Len(t, fx.proposals.proposals, 1, "exactly one proposal per talent and job")
}

func TestSubmitRequiresOpenJob(t *testing.T) {
	fx := newProposalFixture()
	fx.openJob.Status = models.JobStatusClosed
	fx.jobs.jobs[fx.openJob.ID] = fx.openJob

	_, err := fx.svc.Submit(context.Background(), fx.talentUserID, dto.CreateProposalRequest{
		JobID:       fx.openJob.ID,
		CoverLetter: "Too late.",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrJobNotOpen)
	assert.Empty(t, fx.proposals.proposals)
}

func TestWithdrawOnlyWhilePending(t *testing.T) {
	fx := newProposalFixture()
	proposal := fx.submit(t)

	fx.proposals.proposals[proposal.ID].Status = models.ProposalStatusAccepted

	_, err := fx.svc.Withdraw(context.Background(), fx.talentUserID, proposal.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrProposalNotPending)
	assert.Equal(t, models.ProposalStatusAccepted, fx.proposals.proposals[proposal.ID].Status,
		"a failed withdraw must not touch the stored status")
}

func TestWithdrawByOwnerSucceeds(t *testing.T) {
	fx := newProposalFixture()
	proposal := fx.submit(t)

	withdrawn, err := fx.svc.Withdraw(context.Background(), fx.talentUserID, proposal.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProposalStatusWithdrawn, withdrawn.Status)
	assert.Equal(t, models.ProposalStatusWithdrawn, fx.proposals.proposals[proposal.ID].Status)
}

func TestWithdrawByStrangerForbidden(t *testing.T) {
	fx := newProposalFixture()
	proposal := fx.submit(t)

	otherUserID := uuid.NewString()
	fx.profiles.talents[otherUserID] = &models.TalentProfile{ID: uuid.NewString(), UserID: otherUserID}

	_, err := fx.svc.Withdraw(context.Background(), otherUserID, proposal.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
	assert.Equal(t, models.ProposalStatusPending, fx.proposals.proposals[proposal.ID].Status)
}

func TestSetStatusRejectsUnknownTransition(t *testing.T) {
	fx := newProposalFixture()
	proposal := fx.submit(t)

	for _, status := range []models.ProposalStatus{models.ProposalStatusPending, models.ProposalStatusWithdrawn, "made_up"} {
		_, err := fx.svc.SetStatus(context.Background(), fx.managerUserID, proposal.ID, status)
		require.Error(t, err, "status %q must be rejected", status)
	}
	assert.Equal(t, models.ProposalStatusPending, fx.proposals.proposals[proposal.ID].Status)
}

func TestSetStatusRequiresJobOwnership(t *testing.T) {
	fx := newProposalFixture()
	proposal := fx.submit(t)

	otherManagerID := uuid.NewString()
	fx.profiles.managers[otherManagerID] = &models.ManagerProfile{ID: uuid.NewString(), UserID: otherManagerID}

	_, err := fx.svc.SetStatus(context.Background(), otherManagerID, proposal.ID, models.ProposalStatusAccepted)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)
	assert.Equal(t, models.ProposalStatusPending, fx.proposals.proposals[proposal.ID].Status,
		"a denied transition leaves the proposal untouched")
}

func TestSetStatusCannotOverrideWithdrawal(t *testing.T) {
	fx := newProposalFixture()
	proposal := fx.submit(t)

	_, err := fx.svc.Withdraw(context.Background(), fx.talentUserID, proposal.ID)
	require.NoError(t, err)

	for _, status := range []models.ProposalStatus{models.ProposalStatusAccepted, models.ProposalStatusRejected, models.ProposalStatusInterview} {
		_, err := fx.svc.SetStatus(context.Background(), fx.managerUserID, proposal.ID, status)
		require.Error(t, err, "a withdrawn proposal must not move to %q", status)
	}
	assert.Equal(t, models.ProposalStatusWithdrawn, fx.proposals.proposals[proposal.ID].Status,
		"the withdrawal is final")
}

func TestSetStatusDecidesAfterInterview(t *testing.T) {
	fx := newProposalFixture()
	proposal := fx.submit(t)

	_, err := fx.svc.SetStatus(context.Background(), fx.managerUserID, proposal.ID, models.ProposalStatusInterview)
	require.NoError(t, err)

	updated, err := fx.svc.SetStatus(context.Background(), fx.managerUserID, proposal.ID, models.ProposalStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ProposalStatusAccepted, updated.Status)

	// Accepted is terminal.
	_, err = fx.svc.SetStatus(context.Background(), fx.managerUserID, proposal.ID, models.ProposalStatusRejected)
	require.Error(t, err)
	assert.Equal(t, models.ProposalStatusAccepted, fx.proposals.proposals[proposal.ID].Status)
}

func TestSetStatusByOwnerApplies(t *testing.T) {
	fx := newProposalFixture()
	proposal := fx.submit(t)

	updated, err := fx.svc.SetStatus(context.Background(), fx.managerUserID, proposal.ID, models.ProposalStatusInterview)
	require.NoError(t, err)
	assert.Equal(t, models.ProposalStatusInterview, updated.Status)
	assert.Equal(t, models.ProposalStatusInterview, fx.proposals.proposals[proposal.ID].Status)
}
