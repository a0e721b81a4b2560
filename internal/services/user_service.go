package services

import (
	"context"
	"errors"

	"gigboard_backend/internal/auth"
	"gigboard_backend/internal/logger"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"
)

// UserService backs the admin user-management surface.
type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Get(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return user, nil
}

func (s *UserService) List(query dto.UserListQuery) (*dto.UserListResponse, error) {
	criteria := repositories.UserFilter{
		Role:     models.UserRole(query.Role),
		Status:   models.UserStatus(query.Status),
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	users, total, err := s.userRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	return &dto.UserListResponse{
		Users:    users,
		PageMeta: dto.NewPageMeta(total, query.Page, query.PageSize),
	}, nil
}

func (s *UserService) Create(ctx context.Context, req dto.AdminCreateUserRequest) (*models.User, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.StorageError(err)
	}

	logger.CtxInfo(ctx, "admin created user", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (s *UserService) Update(id string, req dto.AdminUpdateUserRequest) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.IsVerified != nil {
		user.IsVerified = *req.IsVerified
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return user, nil
}

var bulkActionStatus = map[string]models.UserStatus{
	"activate":   models.UserStatusActive,
	"deactivate": models.UserStatusPending,
	"suspend":    models.UserStatusSuspended,
	"ban":        models.UserStatusBanned,
}

// BulkAction applies the action to each user independently. A failing item
// never aborts the batch; failures are reported per id.
func (s *UserService) BulkAction(ctx context.Context, req dto.BulkUserActionRequest) (*dto.BulkActionResult, error) {
	status, ok := bulkActionStatus[req.Action]
	if !ok {
		return nil, apperrors.ErrInvalidOperation("user", "Unknown bulk action")
	}

	result := &dto.BulkActionResult{}
	for _, id := range req.UserIDs {
		if err := s.applyStatus(id, status); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.BulkActionError{UserID: id, Error: err.Error()})
			continue
		}
		result.Success++
	}

	logger.CtxInfo(ctx, "bulk user action applied",
		"action", req.Action, "success", result.Success, "failed", result.Failed)
	return result, nil
}

func (s *UserService) applyStatus(id string, status models.UserStatus) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return err
	}
	if user.Role == models.UserRoleAdmin {
		return errors.New("admin accounts cannot be modified in bulk")
	}
	return s.userRepo.UpdateStatus(id, status)
}

func (s *UserService) RegistrationStats() (*repositories.RegistrationStats, error) {
	stats, err := s.userRepo.GetRegistrationStats()
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return stats, nil
}
