package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gigboard_backend/internal/email"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fakes embed the repository interface so only the methods a test path
// touches need implementations.

type fakeUserRepo struct {
	repositories.UserRepository
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) EmailExists(email string) (bool, error) {
	for _, user := range f.users {
		if strings.EqualFold(user.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

type fakeProfileRepo struct {
	repositories.ProfileRepository
	talents  map[string]*models.TalentProfile
	managers map[string]*models.ManagerProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		talents:  map[string]*models.TalentProfile{},
		managers: map[string]*models.ManagerProfile{},
	}
}

func (f *fakeProfileRepo) FindTalentByUserID(userID string) (*models.TalentProfile, error) {
	profile, ok := f.talents[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	clone := *profile
	return &clone, nil
}

func (f *fakeProfileRepo) FindManagerByUserID(userID string) (*models.ManagerProfile, error) {
	profile, ok := f.managers[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	clone := *profile
	return &clone, nil
}

// fakeArchiveRepo mimics the transactional move between the live stores and
// the archive.
type fakeArchiveRepo struct {
	repositories.ArchiveRepository
	records  map[string]*models.ArchivedUser
	users    *fakeUserRepo
	profiles *fakeProfileRepo
}

func newFakeArchiveRepo(users *fakeUserRepo, profiles *fakeProfileRepo) *fakeArchiveRepo {
	return &fakeArchiveRepo{
		records:  map[string]*models.ArchivedUser{},
		users:    users,
		profiles: profiles,
	}
}

func (f *fakeArchiveRepo) Archive(record *models.ArchivedUser, userID string) error {
	if _, ok := f.users.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	f.records[record.ID] = record
	delete(f.users.users, userID)
	delete(f.profiles.talents, userID)
	delete(f.profiles.managers, userID)
	return nil
}

func (f *fakeArchiveRepo) Restore(archivedID string, user *models.User, talent *models.TalentProfile, manager *models.ManagerProfile) error {
	if _, ok := f.records[archivedID]; !ok {
		return repositories.ErrArchiveNotFound
	}
	f.users.users[user.ID] = user
	if talent != nil {
		f.profiles.talents[user.ID] = talent
	}
	if manager != nil {
		f.profiles.managers[user.ID] = manager
	}
	delete(f.records, archivedID)
	return nil
}

func (f *fakeArchiveRepo) FindByID(id string) (*models.ArchivedUser, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, repositories.ErrArchiveNotFound
	}
	clone := *record
	return &clone, nil
}

func (f *fakeArchiveRepo) Delete(id string) error {
	if _, ok := f.records[id]; !ok {
		return repositories.ErrArchiveNotFound
	}
	delete(f.records, id)
	return nil
}

func newArchiveFixture() (*ArchiveService, *fakeUserRepo, *fakeProfileRepo, *fakeArchiveRepo) {
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	archive := newFakeArchiveRepo(users, profiles)
	svc := NewArchiveService(archive, users, profiles, email.NewMockProvider())
	return svc, users, profiles, archive
}

func seedTalent(users *fakeUserRepo, profiles *fakeProfileRepo) *models.User {
	user := &models.User{
		Email:        "kate@example.com",
		PasswordHash: "$2a$10$original-hash",
		FirstName:    "Kate",
		LastName:     "Lin",
		Role:         models.UserRoleTalent,
		Status:       models.UserStatusActive,
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	users.users[user.ID] = user

	profiles.talents[user.ID] = &models.TalentProfile{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		DisplayName:  "Kate L.",
		HourlyRate:   45,
		Availability: models.AvailabilityPartTime,
		City:         "Berlin",
		Skills: []models.Skill{
			{ID: uuid.NewString(), Name: "Go"},
			{ID: uuid.NewString(), Name: "PostgreSQL"},
		},
	}
	return user
}

func TestSoftDeleteArchivesSnapshot(t *testing.T) {
	svc, users, profiles, archive := newArchiveFixture()
	user := seedTalent(users, profiles)

	result, err := svc.SoftDelete(context.Background(), "admin-1", user.ID, "left the platform")
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.UserID)
	assert.Equal(t, "kate@example.com", result.Email)

	_, exists := users.users[user.ID]
	assert.False(t, exists, "live user should be gone")

	record, err := archive.FindByID(result.ArchivedID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, record.OriginalUserID)
	assert.Equal(t, models.UserRoleTalent, record.Role)
	assert.Equal(t, "left the platform", record.DeletionReason)
	assert.Equal(t, "admin-1", record.DeletedBy)
	assert.Equal(t, user.CreatedAt, record.OriginalCreatedAt)

	var snapshot map[string]interface{}
	require.NoError(t, json.Unmarshal(record.UserData, &snapshot))
	assert.Equal(t, "$2a$10$original-hash", snapshot["password_hash"])

	var profileSnap models.TalentProfile
	require.NoError(t, json.Unmarshal(record.ProfileData, &profileSnap))
	assert.Equal(t, models.AvailabilityPartTime, profileSnap.Availability)
}

func TestSoftDeleteRejectsAdmin(t *testing.T) {
	svc, users, _, archive := newArchiveFixture()

	admin := &models.User{Email: "root@example.com", Role: models.UserRoleAdmin}
	admin.ID = uuid.NewString()
	users.users[admin.ID] = admin

	_, err := svc.SoftDelete(context.Background(), "admin-1", admin.ID, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAdminNotDeletable)

	_, exists := users.users[admin.ID]
	assert.True(t, exists, "admin must remain live")
	assert.Empty(t, archive.records, "nothing may be archived")
}

func TestRestoreRoundTrip(t *testing.T) {
	svc, users, profiles, archive := newArchiveFixture()
	original := seedTalent(users, profiles)
	originalProfileID := profiles.talents[original.ID].ID

	// A proposal keyed by the talent profile must still resolve after the
	// round trip.
	proposal := &models.Proposal{TalentProfileID: originalProfileID, Status: models.ProposalStatusAccepted}

	deleted, err := svc.SoftDelete(context.Background(), "admin-1", original.ID, "cleanup")
	require.NoError(t, err)

	restored, err := svc.Restore(context.Background(), "admin-1", deleted.ArchivedID)
	require.NoError(t, err)

	assert.NotEqual(t, original.ID, restored.UserID, "restored user gets a fresh id")
	assert.Equal(t, original.Email, restored.Email)
	assert.Equal(t, models.UserRoleTalent, restored.Role)

	live := users.users[restored.UserID]
	require.NotNil(t, live)
	assert.Equal(t, original.PasswordHash, live.PasswordHash, "credentials survive the round trip")
	assert.Equal(t, original.CreatedAt, live.CreatedAt, "original creation time survives")
	assert.Equal(t, models.UserStatusActive, live.Status)

	profile := profiles.talents[restored.UserID]
	require.NotNil(t, profile)
	assert.Equal(t, restored.UserID, profile.UserID)
	assert.Equal(t, originalProfileID, profile.ID,
		"the profile keeps its identifier so rows keyed by it re-attach")
	assert.Equal(t, proposal.TalentProfileID, profile.ID, "proposal history stays linked")
	assert.Equal(t, models.AvailabilityPartTime, profile.Availability)
	assert.Equal(t, float64(45), profile.HourlyRate)

	require.Len(t, profile.Skills, 2, "skills survive the round trip")
	assert.Equal(t, "Go", profile.Skills[0].Name)
	assert.Equal(t, "PostgreSQL", profile.Skills[1].Name)

	assert.Empty(t, archive.records, "archive record is consumed by the restore")
}

func TestRestoreFailsWhenEmailTaken(t *testing.T) {
	svc, users, profiles, archive := newArchiveFixture()
	original := seedTalent(users, profiles)

	deleted, err := svc.SoftDelete(context.Background(), "admin-1", original.ID, "")
	require.NoError(t, err)

	// Someone registers the same address while the account is archived.
	squatter := &models.User{Email: "kate@example.com", Role: models.UserRoleTalent}
	squatter.ID = uuid.NewString()
	users.users[squatter.ID] = squatter

	_, err = svc.Restore(context.Background(), "admin-1", deleted.ArchivedID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRestoreEmailTaken)

	_, found := archive.records[deleted.ArchivedID]
	assert.True(t, found, "failed restore must leave the archive record in place")
	assert.Len(t, users.users, 1, "no partial user may be created")
}

func TestPurgeRemovesRecordForGood(t *testing.T) {
	svc, users, profiles, archive := newArchiveFixture()
	original := seedTalent(users, profiles)

	deleted, err := svc.SoftDelete(context.Background(), "admin-1", original.ID, "")
	require.NoError(t, err)

	require.NoError(t, svc.Purge(context.Background(), "admin-1", deleted.ArchivedID))
	assert.Empty(t, archive.records)

	err = svc.Purge(context.Background(), "admin-1", deleted.ArchivedID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestSoftDeleteUnknownUser(t *testing.T) {
	svc, _, _, archive := newArchiveFixture()

	_, err := svc.SoftDelete(context.Background(), "admin-1", uuid.NewString(), "")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	assert.Empty(t, archive.records)
}
