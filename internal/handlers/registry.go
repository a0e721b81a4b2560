package handlers

import (
	"gigboard_backend/internal/services"
	"gigboard_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Archive      *ArchiveHandler
	Profile      *ProfileHandler
	Job          *JobHandler
	Proposal     *ProposalHandler
	Interview    *InterviewHandler
	Conversation *ConversationHandler
	Package      *PackageHandler
	Discount     *DiscountHandler
	Invoice      *InvoiceHandler
	Transaction  *TransactionHandler
	Analytics    *AnalyticsHandler
	Notification *NotificationHandler
}

func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, svc.Auth),
		User:         NewUserHandler(base, svc.User),
		Archive:      NewArchiveHandler(base, svc.Archive),
		Profile:      NewProfileHandler(base, svc.Profile),
		Job:          NewJobHandler(base, svc.Job),
		Proposal:     NewProposalHandler(base, svc.Proposal),
		Interview:    NewInterviewHandler(base, svc.Interview),
		Conversation: NewConversationHandler(base, svc.Conversation),
		Package:      NewPackageHandler(base, svc.Package),
		Discount:     NewDiscountHandler(base, svc.Discount),
		Invoice:      NewInvoiceHandler(base, svc.Invoice),
		Transaction:  NewTransactionHandler(base, svc.Transaction),
		Analytics:    NewAnalyticsHandler(base, svc.Analytics),
		Notification: NewNotificationHandler(base, svc.Notification),
	}
}
