package services

import (
	"time"

	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"
)

const recentSignupLimit = 10

// AnalyticsService assembles the admin dashboard from per-store aggregates.
type AnalyticsService struct {
	userRepo        repositories.UserRepository
	jobRepo         repositories.JobRepository
	proposalRepo    repositories.ProposalRepository
	transactionRepo repositories.TransactionRepository
	archiveRepo     repositories.ArchiveRepository
}

func NewAnalyticsService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	proposalRepo repositories.ProposalRepository,
	transactionRepo repositories.TransactionRepository,
	archiveRepo repositories.ArchiveRepository,
) *AnalyticsService {
	return &AnalyticsService{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		proposalRepo:    proposalRepo,
		transactionRepo: transactionRepo,
		archiveRepo:     archiveRepo,
	}
}

func (s *AnalyticsService) Dashboard() (*dto.DashboardStats, error) {
	registration, err := s.userRepo.GetRegistrationStats()
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	jobs, err := s.jobRepo.CountByStatus()
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	proposals, err := s.proposalRepo.CountByStatus()
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	// Money stats cover the trailing 30 days.
	now := time.Now()
	transactions, err := s.transactionRepo.SumByType(now.AddDate(0, 0, -30), now)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	archived, err := s.archiveRepo.CountAll()
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	recent, err := s.userRepo.FindRecent(recentSignupLimit)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	signups := make([]dto.RecentSignup, 0, len(recent))
	for i := range recent {
		user := &recent[i]
		signups = append(signups, dto.RecentSignup{
			ID:          user.ID,
			Email:       user.Email,
			Role:        string(user.Role),
			DisplayName: user.DisplayName(),
			CreatedAt:   user.CreatedAt,
		})
	}

	return &dto.DashboardStats{
		Users: dto.UserStats{
			Total:           registration.Total,
			ByRole:          registration.ByRole,
			Verified:        registration.VerifiedCount,
			RegisteredToday: registration.Today,
			RegisteredWeek:  registration.ThisWeek,
			RegisteredMonth: registration.ThisMonth,
			GrowthPercent:   growthPercent(registration.ThisMonth, registration.PrevMonth),
		},
		Jobs:          jobs,
		Proposals:     proposals,
		Transactions:  transactions,
		ArchivedUsers: archived,
		RecentSignups: signups,
	}, nil
}

// growthPercent is month-over-month signup growth. A period with no prior
// signups reports 100% growth if anything landed this month.
func growthPercent(current, previous int64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}
