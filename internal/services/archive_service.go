package services

import (
	"context"
	"encoding/json"
	"errors"

	"gigboard_backend/internal/email"
	"gigboard_backend/internal/logger"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ArchiveService implements the soft-delete lifecycle: a delete moves the
// account into the archive as a full snapshot, a restore moves it back, and
// a purge removes the snapshot for good. Each move is atomic; a failure
// leaves both live and archived storage untouched.
type ArchiveService struct {
	archiveRepo repositories.ArchiveRepository
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	mailer      email.Provider
}

func NewArchiveService(
	archiveRepo repositories.ArchiveRepository,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	mailer email.Provider,
) *ArchiveService {
	return &ArchiveService{
		archiveRepo: archiveRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		mailer:      mailer,
	}
}

// userSnapshot re-exposes the password hash, which the API serializer hides.
// The archive must carry it so a restored account keeps its credentials.
type userSnapshot struct {
	models.User
	PasswordHash string `json:"password_hash"`
}

// SoftDelete snapshots the user and their role profile, then removes the
// live rows. Admin accounts are rejected before anything is written.
func (s *ArchiveService) SoftDelete(ctx context.Context, actorID, userID, reason string) (*dto.SoftDeleteResult, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	if user.Role == models.UserRoleAdmin {
		return nil, apperrors.ErrAdminNotDeletable
	}

	userData, err := json.Marshal(userSnapshot{User: *user, PasswordHash: user.PasswordHash})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profileData, err := s.snapshotProfile(user)
	if err != nil {
		return nil, err
	}

	record := &models.ArchivedUser{
		OriginalUserID:    user.ID,
		Email:             user.Email,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		Role:              user.Role,
		ProfileImage:      user.ProfileImage,
		UserData:          datatypes.JSON(userData),
		ProfileData:       profileData,
		DeletionReason:    reason,
		DeletedBy:         actorID,
		OriginalCreatedAt: user.CreatedAt,
	}

	if err := s.archiveRepo.Archive(record, user.ID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	logger.CtxInfo(ctx, "user archived",
		"archived_id", record.ID, "user_id", user.ID, "deleted_by", actorID)

	return &dto.SoftDeleteResult{
		ArchivedID:  record.ID,
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName(),
	}, nil
}

func (s *ArchiveService) snapshotProfile(user *models.User) (datatypes.JSON, error) {
	switch user.Role {
	case models.UserRoleTalent:
		profile, err := s.profileRepo.FindTalentByUserID(user.ID)
		if err != nil {
			if errors.Is(err, repositories.ErrProfileNotFound) {
				return nil, nil
			}
			return nil, apperrors.StorageError(err)
		}
		raw, err := json.Marshal(profile)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return datatypes.JSON(raw), nil
	case models.UserRoleManager:
		profile, err := s.profileRepo.FindManagerByUserID(user.ID)
		if err != nil {
			if errors.Is(err, repositories.ErrProfileNotFound) {
				return nil, nil
			}
			return nil, apperrors.StorageError(err)
		}
		raw, err := json.Marshal(profile)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return datatypes.JSON(raw), nil
	}
	return nil, nil
}

// Restore rebuilds the live account from the snapshot. The email collision
// check runs before any write; a live user holding the archived email makes
// the whole restore fail with a conflict. The restored user keeps the
// original password hash and creation time but gets a fresh identifier. The
// role profile keeps its original identifier: proposals, interviews and
// skill links are keyed by it, and they must re-attach after the restore.
func (s *ArchiveService) Restore(ctx context.Context, actorID, archivedID string) (*dto.RestoreResult, error) {
	record, err := s.archiveRepo.FindByID(archivedID)
	if err != nil {
		if errors.Is(err, repositories.ErrArchiveNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	taken, err := s.userRepo.EmailExists(record.Email)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	if taken {
		return nil, apperrors.ErrRestoreEmailTaken
	}

	user, err := s.rebuildUser(record)
	if err != nil {
		return nil, err
	}

	talent, manager, err := s.rebuildProfile(record, user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.archiveRepo.Restore(record.ID, user, talent, manager); err != nil {
		if errors.Is(err, repositories.ErrArchiveNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	logger.CtxInfo(ctx, "user restored",
		"archived_id", record.ID, "user_id", user.ID, "restored_by", actorID)

	if err := s.mailer.SendAccountRestoredEmail(user.Email, user.DisplayName()); err != nil {
		logger.CtxWithError(ctx, "restore email not sent", err, "user_id", user.ID)
	}

	return &dto.RestoreResult{
		UserID:      user.ID,
		Email:       user.Email,
		Role:        user.Role,
		DisplayName: user.DisplayName(),
	}, nil
}

// rebuildUser decodes the user snapshot and re-keys it. The identifier is
// generated here, not by the database, so the restored profile can reference
// it inside the same transaction.
func (s *ArchiveService) rebuildUser(record *models.ArchivedUser) (*models.User, error) {
	var snap userSnapshot
	if err := json.Unmarshal(record.UserData, &snap); err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := snap.User
	user.PasswordHash = snap.PasswordHash
	if user.Email == "" {
		user.Email = record.Email
	}
	if user.Role == "" {
		user.Role = record.Role
	}

	user.ID = uuid.NewString()
	user.CreatedAt = record.OriginalCreatedAt
	user.Status = models.UserStatusActive
	user.TalentProfile = nil
	user.ManagerProfile = nil
	user.RefreshTokens = nil
	return &user, nil
}

func (s *ArchiveService) rebuildProfile(record *models.ArchivedUser, userID string) (*models.TalentProfile, *models.ManagerProfile, error) {
	if len(record.ProfileData) == 0 {
		return nil, nil, nil
	}

	switch record.Role {
	case models.UserRoleTalent:
		var profile models.TalentProfile
		if err := json.Unmarshal(record.ProfileData, &profile); err != nil {
			return nil, nil, apperrors.InternalError(err)
		}
		if profile.ID == "" {
			profile.ID = uuid.NewString()
		}
		profile.UserID = userID
		if profile.Availability == "" {
			profile.Availability = models.AvailabilityContract
		}
		return &profile, nil, nil
	case models.UserRoleManager:
		var profile models.ManagerProfile
		if err := json.Unmarshal(record.ProfileData, &profile); err != nil {
			return nil, nil, apperrors.InternalError(err)
		}
		if profile.ID == "" {
			profile.ID = uuid.NewString()
		}
		profile.UserID = userID
		return nil, &profile, nil
	}
	return nil, nil, nil
}

// Purge removes the snapshot permanently. There is no undo.
func (s *ArchiveService) Purge(ctx context.Context, actorID, archivedID string) error {
	if err := s.archiveRepo.Delete(archivedID); err != nil {
		if errors.Is(err, repositories.ErrArchiveNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.StorageError(err)
	}

	logger.CtxInfo(ctx, "archived user purged", "archived_id", archivedID, "purged_by", actorID)
	return nil
}

func (s *ArchiveService) Get(archivedID string) (*models.ArchivedUser, error) {
	record, err := s.archiveRepo.FindByID(archivedID)
	if err != nil {
		if errors.Is(err, repositories.ErrArchiveNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return record, nil
}

func (s *ArchiveService) List(query dto.ArchiveListQuery) (*dto.ArchiveListResponse, error) {
	criteria := repositories.ArchiveFilter{
		Role:     models.UserRole(query.Role),
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	archived, total, err := s.archiveRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	return &dto.ArchiveListResponse{
		Archived: archived,
		PageMeta: dto.NewPageMeta(total, query.Page, query.PageSize),
	}, nil
}
