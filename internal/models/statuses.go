package models

type UserRole string
type UserStatus string
type JobStatus string
type ProposalStatus string
type InterviewStatus string
type InvoiceStatus string
type TransactionType string
type TransactionStatus string
type DiscountType string
type Availability string

const (
	UserRoleTalent  UserRole = "talent"
	UserRoleManager UserRole = "manager"
	UserRoleAdmin   UserRole = "admin"

	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"

	JobStatusDraft     JobStatus = "draft"
	JobStatusOpen      JobStatus = "open"
	JobStatusClosed    JobStatus = "closed"
	JobStatusCancelled JobStatus = "cancelled"

	ProposalStatusPending           ProposalStatus = "pending"
	ProposalStatusAccepted          ProposalStatus = "accepted"
	ProposalStatusRejected          ProposalStatus = "rejected"
	ProposalStatusWithdrawn         ProposalStatus = "withdrawn"
	ProposalStatusInterview         ProposalStatus = "interview"
	ProposalStatusApproved          ProposalStatus = "approved"
	ProposalStatusNoLongerAccepting ProposalStatus = "no_longer_accepting"
	ProposalStatusInappropriate     ProposalStatus = "inappropriate"

	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCancelled InterviewStatus = "cancelled"
	InterviewStatusNoShow    InterviewStatus = "no_show"

	InvoiceStatusDraft  InvoiceStatus = "draft"
	InvoiceStatusIssued InvoiceStatus = "issued"
	InvoiceStatusPaid   InvoiceStatus = "paid"
	InvoiceStatusVoid   InvoiceStatus = "void"

	TransactionTypePayment    TransactionType = "payment"
	TransactionTypePayout     TransactionType = "payout"
	TransactionTypeRefund     TransactionType = "refund"
	TransactionTypeCommission TransactionType = "commission"

	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusSucceeded TransactionStatus = "succeeded"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusReversed  TransactionStatus = "reversed"

	DiscountTypePercent DiscountType = "percent"
	DiscountTypeFixed   DiscountType = "fixed"

	AvailabilityContract Availability = "contract"
	AvailabilityFullTime Availability = "full_time"
	AvailabilityPartTime Availability = "part_time"
)

// ValidProposalStatuses is the closed set accepted from manager transitions.
var ValidProposalStatuses = map[ProposalStatus]bool{
	ProposalStatusAccepted:          true,
	ProposalStatusRejected:          true,
	ProposalStatusInterview:         true,
	ProposalStatusApproved:          true,
	ProposalStatusNoLongerAccepting: true,
	ProposalStatusInappropriate:     true,
}

// proposalTransitions maps a current status to the manager-reachable set.
// Pending proposals can move anywhere in the closed set; a proposal in
// interview can still be decided. Everything else, including a talent
// withdrawal, is terminal.
var proposalTransitions = map[ProposalStatus]map[ProposalStatus]bool{
	ProposalStatusPending: ValidProposalStatuses,
	ProposalStatusInterview: {
		ProposalStatusAccepted: true,
		ProposalStatusRejected: true,
		ProposalStatusApproved: true,
	},
}

// ProposalTransitionAllowed reports whether a manager may move a proposal
// from one status to another.
func ProposalTransitionAllowed(from, to ProposalStatus) bool {
	return proposalTransitions[from][to]
}
