package services

import (
	"context"
	"testing"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fakeUserRepo) UpdateStatus(userID string, status models.UserStatus) error {
	user, ok := f.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Status = status
	return nil
}

func seedUser(users *fakeUserRepo, role models.UserRole) *models.User {
	user := &models.User{
		Email:  uuid.NewString() + "@example.com",
		Role:   role,
		Status: models.UserStatusActive,
	}
	user.ID = uuid.NewString()
	users.users[user.ID] = user
	return user
}

// A bulk action is best-effort: one bad item is reported, the rest of the
// batch still lands.
func TestBulkActionContinuesPastFailures(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users)

	talent := seedUser(users, models.UserRoleTalent)
	admin := seedUser(users, models.UserRoleAdmin)
	manager := seedUser(users, models.UserRoleManager)

	result, err := svc.BulkAction(context.Background(), dto.BulkUserActionRequest{
		UserIDs: []string{talent.ID, admin.ID, manager.ID},
		Action:  "suspend",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Success)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, admin.ID, result.Errors[0].UserID, "the failure names the offending id")

	assert.Equal(t, models.UserStatusSuspended, users.users[talent.ID].Status)
	assert.Equal(t, models.UserStatusSuspended, users.users[manager.ID].Status)
	assert.Equal(t, models.UserStatusActive, users.users[admin.ID].Status, "admins are never touched in bulk")
}

func TestBulkActionReportsMissingUsers(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users)

	talent := seedUser(users, models.UserRoleTalent)
	missing := uuid.NewString()

	result, err := svc.BulkAction(context.Background(), dto.BulkUserActionRequest{
		UserIDs: []string{missing, talent.ID},
		Action:  "ban",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, missing, result.Errors[0].UserID)
	assert.Equal(t, models.UserStatusBanned, users.users[talent.ID].Status)
}

func TestBulkActionRejectsUnknownAction(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users)

	_, err := svc.BulkAction(context.Background(), dto.BulkUserActionRequest{
		UserIDs: []string{uuid.NewString()},
		Action:  "explode",
	})
	require.Error(t, err)
}
