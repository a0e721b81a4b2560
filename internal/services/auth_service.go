package services

import (
	"context"
	"errors"
	"time"

	"gigboard_backend/internal/auth"
	"gigboard_backend/internal/email"
	"gigboard_backend/internal/logger"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"
)

const (
	refreshTokenTTL = 30 * 24 * time.Hour
	resetTokenTTL   = time.Hour
)

type AuthService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	mailer      email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository, mailer email.Provider) *AuthService {
	return &AuthService{userRepo: userRepo, profileRepo: profileRepo, mailer: mailer}
}

// Register creates the user and its role profile, then sends the
// verification mail. Admin accounts are never self-registered.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.LoginResponse, error) {
	if req.Role != models.UserRoleTalent && req.Role != models.UserRoleManager {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:             req.Email,
		PasswordHash:      hash,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Role:              req.Role,
		Status:            models.UserStatusPending,
		VerificationToken: auth.GenerateRandomToken(),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.StorageError(err)
	}

	if err := s.createInitialProfile(user, req); err != nil {
		return nil, err
	}

	if err := s.mailer.SendVerificationEmail(user.Email, user.DisplayName(), user.VerificationToken); err != nil {
		logger.CtxWithError(ctx, "verification email not sent", err, "user_id", user.ID)
	}

	return s.issueTokens(user)
}

func (s *AuthService) createInitialProfile(user *models.User, req dto.RegisterRequest) error {
	switch user.Role {
	case models.UserRoleTalent:
		displayName := req.DisplayName
		if displayName == "" {
			displayName = user.DisplayName()
		}
		profile := &models.TalentProfile{
			UserID:       user.ID,
			DisplayName:  displayName,
			Availability: models.AvailabilityContract,
			City:         req.City,
			IsPublic:     true,
		}
		if err := s.profileRepo.CreateTalent(profile); err != nil {
			return apperrors.StorageError(err)
		}
	case models.UserRoleManager:
		profile := &models.ManagerProfile{
			UserID:        user.ID,
			CompanyName:   req.CompanyName,
			ContactPerson: user.DisplayName(),
			City:          req.City,
		}
		if err := s.profileRepo.CreateManager(profile); err != nil {
			return apperrors.StorageError(err)
		}
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.StorageError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	switch user.Status {
	case models.UserStatusSuspended:
		return nil, apperrors.ErrUserSuspended
	case models.UserStatusBanned:
		return nil, apperrors.ErrUserBanned
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID, "role", user.Role)
	return s.issueTokens(user)
}

// Refresh rotates the refresh token: the presented token is deleted and a
// fresh pair is issued.
func (s *AuthService) Refresh(req dto.RefreshRequest) (*dto.LoginResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(stored.Token)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.userRepo.DeleteRefreshToken(stored.Token); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return s.issueTokens(user)
}

func (s *AuthService) Logout(refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}

func (s *AuthService) VerifyEmail(token string) error {
	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}
	if err := s.userRepo.VerifyUser(user.ID); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}

// RequestPasswordReset is deliberately silent when the email is unknown so
// the endpoint cannot be used to probe for accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.StorageError(err)
	}

	exp := time.Now().Add(resetTokenTTL)
	user.ResetToken = auth.GenerateRandomToken()
	user.ResetTokenExp = &exp
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.StorageError(err)
	}

	if err := s.mailer.SendPasswordResetEmail(user.Email, user.DisplayName(), user.ResetToken); err != nil {
		logger.CtxWithError(ctx, "password reset email not sent", err, "user_id", user.ID)
	}
	return nil
}

func (s *AuthService) ResetPassword(req dto.ResetPasswordRequest) error {
	user, err := s.userRepo.FindByResetToken(req.Token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}
	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return apperrors.ErrInvalidToken
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExp = nil
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.StorageError(err)
	}

	// Existing sessions are invalidated after a reset.
	return s.userRepo.DeleteUserRefreshTokens(user.ID)
}

func (s *AuthService) ChangePassword(userID string, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.StorageError(err)
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}

func (s *AuthService) issueTokens(user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     auth.GenerateRandomToken(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.userRepo.CreateRefreshToken(refresh); err != nil {
		return nil, apperrors.StorageError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		User:         user,
	}, nil
}
