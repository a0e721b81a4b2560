package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/realtime"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInterviewRepo struct {
	repositories.InterviewRepository
	interviews  map[string]*models.Interview
	proposals   *fakeProposalRepo
	scheduleErr error
}

// Schedule mirrors the production transaction: the interview and the
// proposal status move together or not at all.
func (f *fakeInterviewRepo) Schedule(interview *models.Interview, proposalStatus models.ProposalStatus) error {
	if f.scheduleErr != nil {
		return f.scheduleErr
	}
	stored, ok := f.proposals.proposals[interview.ProposalID]
	if !ok {
		return repositories.ErrProposalNotFound
	}
	if interview.ID == "" {
		interview.ID = uuid.NewString()
	}
	clone := *interview
	f.interviews[interview.ID] = &clone
	stored.Status = proposalStatus
	return nil
}

type interviewFixture struct {
	*proposalFixture
	svc        *InterviewService
	interviews *fakeInterviewRepo
}

func newInterviewFixture() *interviewFixture {
	base := newProposalFixture()
	interviews := &fakeInterviewRepo{
		interviews: map[string]*models.Interview{},
		proposals:  base.proposals,
	}
	notificationSvc := NewNotificationService(base.notifications, realtime.NoopPublisher{})
	svc := NewInterviewService(interviews, base.proposals, base.profiles, notificationSvc)

	return &interviewFixture{proposalFixture: base, svc: svc, interviews: interviews}
}

func TestScheduleMovesProposalToInterview(t *testing.T) {
	fx := newInterviewFixture()
	proposal := fx.submit(t)

	interview, err := fx.svc.Schedule(context.Background(), fx.managerUserID, dto.ScheduleInterviewRequest{
		ProposalID:  proposal.ID,
		ScheduledAt: time.Now().Add(48 * time.Hour),
		MeetingLink: "https://meet.example.com/abc",
	})
	require.NoError(t, err)

	assert.Equal(t, proposal.ID, interview.ProposalID)
	assert.Equal(t, models.InterviewStatusScheduled, interview.Status)
	assert.Equal(t, 30, interview.DurationMinutes, "duration defaults when not given")
	assert.Equal(t, models.ProposalStatusInterview, fx.proposals.proposals[proposal.ID].Status,
		"the proposal moves with the interview")
}

func TestScheduleFailureLeavesProposalUntouched(t *testing.T) {
	fx := newInterviewFixture()
	proposal := fx.submit(t)

	fx.interviews.scheduleErr = errors.New("connection reset")
	_, err := fx.svc.Schedule(context.Background(), fx.managerUserID, dto.ScheduleInterviewRequest{
		ProposalID:  proposal.ID,
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})
	require.Error(t, err)

	assert.Empty(t, fx.interviews.interviews, "no interview may exist without the status move")
	assert.Equal(t, models.ProposalStatusPending, fx.proposals.proposals[proposal.ID].Status)
}

func TestScheduleRequiresJobOwnership(t *testing.T) {
	fx := newInterviewFixture()
	proposal := fx.submit(t)

	otherManagerID := uuid.NewString()
	fx.profiles.managers[otherManagerID] = &models.ManagerProfile{ID: uuid.NewString(), UserID: otherManagerID}

	_, err := fx.svc.Schedule(context.Background(), otherManagerID, dto.ScheduleInterviewRequest{
		ProposalID:  proposal.ID,
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)
	assert.Empty(t, fx.interviews.interviews)
	assert.Equal(t, models.ProposalStatusPending, fx.proposals.proposals[proposal.ID].Status)
}
