package services

import (
	"gigboard_backend/internal/config"
	"gigboard_backend/internal/email"
	"gigboard_backend/internal/realtime"
	"gigboard_backend/internal/repositories"
)

// ServiceContainer wires every service over the shared repository set.
type ServiceContainer struct {
	Auth         *AuthService
	User         *UserService
	Archive      *ArchiveService
	Profile      *ProfileService
	Job          *JobService
	Proposal     *ProposalService
	Interview    *InterviewService
	Conversation *ConversationService
	Package      *PackageService
	Discount     *DiscountService
	Invoice      *InvoiceService
	Transaction  *TransactionService
	Analytics    *AnalyticsService
	Notification *NotificationService
}

type Repositories struct {
	User         repositories.UserRepository
	Archive      repositories.ArchiveRepository
	Profile      repositories.ProfileRepository
	Job          repositories.JobRepository
	Proposal     repositories.ProposalRepository
	Interview    repositories.InterviewRepository
	Conversation repositories.ConversationRepository
	Package      repositories.PackageRepository
	Discount     repositories.DiscountRepository
	Invoice      repositories.InvoiceRepository
	Transaction  repositories.TransactionRepository
	Notification repositories.NotificationRepository
}

func NewServiceContainer(repos Repositories, mailer email.Provider, publisher realtime.Publisher, cfg *config.Config) *ServiceContainer {
	notifications := NewNotificationService(repos.Notification, publisher)
	discounts := NewDiscountService(repos.Discount)

	return &ServiceContainer{
		Auth:         NewAuthService(repos.User, repos.Profile, mailer),
		User:         NewUserService(repos.User),
		Archive:      NewArchiveService(repos.Archive, repos.User, repos.Profile, mailer),
		Profile:      NewProfileService(repos.Profile, repos.User),
		Job:          NewJobService(repos.Job, repos.Profile),
		Proposal:     NewProposalService(repos.Proposal, repos.Job, repos.Profile, notifications),
		Interview:    NewInterviewService(repos.Interview, repos.Proposal, repos.Profile, notifications),
		Conversation: NewConversationService(repos.Conversation, repos.User, notifications),
		Package:      NewPackageService(repos.Package, repos.Profile),
		Discount:     discounts,
		Invoice:      NewInvoiceService(repos.Invoice, repos.Transaction, discounts, notifications, cfg),
		Transaction:  NewTransactionService(repos.Transaction),
		Analytics:    NewAnalyticsService(repos.User, repos.Job, repos.Proposal, repos.Transaction, repos.Archive),
		Notification: notifications,
	}
}
