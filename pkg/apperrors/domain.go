package apperrors

import (
	"net/http"
)

// Factories and predefined errors for the marketplace domain.

// ErrNotFound converts a repository not-found error into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a repository uniqueness error into a 409 AppError.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// --- Auth & user status ---

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrUserSuspended = New(
	CodeForbidden,
	"auth",
	"Your account has been suspended",
	http.StatusForbidden,
)

var ErrUserBanned = New(
	CodeForbidden,
	"auth",
	"Your account has been banned",
	http.StatusForbidden,
)

// --- Archive (soft delete / restore) ---

// ErrAdminNotDeletable guards the soft-delete precondition: admin accounts
// never enter the archive.
var ErrAdminNotDeletable = New(
	CodeForbidden,
	"archive",
	"Admin accounts cannot be deleted",
	http.StatusForbidden,
)

// ErrRestoreEmailTaken is returned before any restore write happens when a
// live user already holds the archived email.
var ErrRestoreEmailTaken = New(
	CodeConflict,
	"archive",
	"A live user with the archived email already exists",
	http.StatusConflict,
)

// --- Jobs & proposals ---

var ErrNotJobOwner = New(
	CodeForbidden,
	"job",
	"You do not own this job",
	http.StatusForbidden,
)

var ErrDuplicateProposal = New(
	CodeConflict,
	"proposal",
	"A proposal for this job already exists",
	http.StatusConflict,
)

var ErrProposalNotPending = New(
	CodeInvalidStatus,
	"proposal",
	"Operation is only allowed while the proposal is pending",
	http.StatusConflict,
)

var ErrJobNotOpen = New(
	CodeInvalidStatus,
	"job",
	"Job is not accepting proposals",
	http.StatusConflict,
)

// --- Conversations ---

var ErrNotConversationMember = New(
	CodeForbidden,
	"conversation",
	"You are not a member of this conversation",
	http.StatusForbidden,
)

// --- Billing ---

var ErrDiscountNotApplicable = New(
	CodeInvalidOperation,
	"discount",
	"Discount code is expired, exhausted or inactive",
	http.StatusBadRequest,
)

var ErrInvoiceNotPayable = New(
	CodeInvalidStatus,
	"invoice",
	"Invoice is not in a payable status",
	http.StatusConflict,
)
