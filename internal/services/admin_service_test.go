package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/pkg/utils"
)

func newAdminFixture() (*fakeUserRepo, *fakeAdminRepo, *fakeStatsRepo, AdminServiceInterface) {
	users := newFakeUserRepo()
	admins := newFakeAdminRepo(users)
	stats := &fakeStatsRepo{}
	return users, admins, stats, NewAdminService(admins, users, stats)
}

func TestCreateAdmin(t *testing.T) {
	users, admins, _, svc := newAdminFixture()

	out, err := svc.CreateAdmin(context.Background(), request_models.CreateAdminRequest{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "s3cret!",
	})
	require.NoError(t, err)
	assert.Equal(t, "root@example.com", out.Email)
	assert.Len(t, admins.admins, 1)

	// The credential row is created alongside, with the ADMIN role and a
	// hashed password.
	user, err := users.FindByEmail(context.Background(), "root@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, db_models.RoleAdmin, user.Role)
	assert.NotEqual(t, "s3cret!", user.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(user.PasswordHash, "s3cret!"))
}

func TestCreateAdminDuplicateEmail(t *testing.T) {
	users, _, _, svc := newAdminFixture()
	users.add(&db_models.User{Name: "Taken", Email: "root@example.com"})

	_, err := svc.CreateAdmin(context.Background(), request_models.CreateAdminRequest{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "s3cret!",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestSoftDeleteAdmin(t *testing.T) {
	users, admins, _, svc := newAdminFixture()

	out, err := svc.CreateAdmin(context.Background(), request_models.CreateAdminRequest{
		Name: "Root", Email: "root@example.com", Password: "s3cret!",
	})
	require.NoError(t, err)

	require.NoError(t, svc.SoftDeleteAdmin(context.Background(), out.ID))

	// Rows survive but the admin is hidden and the login is disabled.
	assert.Len(t, admins.admins, 1)
	_, err = svc.GetAdmin(context.Background(), out.ID)
	assert.ErrorIs(t, err, utils.ErrAdminNotFound)

	user, err := users.FindByEmail(context.Background(), "root@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, db_models.UserStatusDeleted, user.Status)
}

func TestDeleteAdmin(t *testing.T) {
	users, admins, _, svc := newAdminFixture()

	out, err := svc.CreateAdmin(context.Background(), request_models.CreateAdminRequest{
		Name: "Root", Email: "root@example.com", Password: "s3cret!",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAdmin(context.Background(), out.ID))
	assert.Empty(t, admins.admins)
	assert.Empty(t, users.users)

	err = svc.DeleteAdmin(context.Background(), out.ID)
	assert.ErrorIs(t, err, utils.ErrAdminNotFound)
}

func TestUpdateAdmin(t *testing.T) {
	_, admins, _, svc := newAdminFixture()

	out, err := svc.CreateAdmin(context.Background(), request_models.CreateAdminRequest{
		Name: "Root", Email: "root@example.com", Password: "s3cret!",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateAdmin(context.Background(), out.ID, request_models.UpdateAdminRequest{
		Name:          strPtr("Renamed"),
		ContactNumber: strPtr("+123456"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "+123456", updated.ContactNumber)
	assert.Len(t, admins.admins, 1)
}

func TestGetAppStatistics(t *testing.T) {
	_, _, stats, svc := newAdminFixture()
	stats.activeUsers = 42
	stats.plans = 17
	stats.accepted = 9
	stats.countries = 6
	stats.profileImages = []string{"a.jpg", "b.jpg"}

	out, err := svc.GetAppStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), out.ActiveUsers)
	assert.Equal(t, int64(17), out.TotalTravelPlans)
	assert.Equal(t, int64(9), out.GroupsFormed)
	assert.Equal(t, int64(6), out.Countries)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, out.CommunityImages)
}
