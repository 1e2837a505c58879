package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services/dto"
)

func TestUserSuspendAndActivate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	user := createTestUser(t, db, models.UserRoleClient)

	resp, err := svc.Suspend(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "SUSPENDED", resp.Status)

	resp, err = svc.Activate(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", resp.Status)
}

func TestUserSuspendAdminForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	admin := createTestUser(t, db, models.UserRoleAdmin)

	_, err := svc.Suspend(admin.ID)
	requireAppError(t, err, http.StatusForbidden)
}

func TestUserSuspendDropsSessions(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	user := createTestUser(t, db, models.UserRoleClient)

	token := &models.RefreshToken{UserID: user.ID, Token: "session-token", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, db.Create(token).Error)

	_, err := svc.Suspend(user.ID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.RefreshToken{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestUserOTPFlow(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	user := createTestUser(t, db, models.UserRoleClient)

	require.NoError(t, svc.SendOTP(user.ID, &dto.SendOTPRequest{Phone: "04141234567"}))

	var fresh models.User
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	require.Len(t, fresh.OTPCode, 6)
	assert.Equal(t, "04141234567", fresh.Phone)
	assert.False(t, fresh.PhoneVerified)

	err := svc.VerifyOTP(user.ID, &dto.VerifyOTPRequest{Code: "000000x"})
	requireAppError(t, err, http.StatusBadRequest)

	require.NoError(t, svc.VerifyOTP(user.ID, &dto.VerifyOTPRequest{Code: fresh.OTPCode}))

	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.True(t, fresh.PhoneVerified)
	assert.Empty(t, fresh.OTPCode)

	// The code is single-use.
	err = svc.VerifyOTP(user.ID, &dto.VerifyOTPRequest{Code: fresh.OTPCode})
	requireAppError(t, err, http.StatusBadRequest)
}

func TestUserOTPExpired(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	user := createTestUser(t, db, models.UserRoleClient)

	past := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(user).Updates(map[string]interface{}{
		"otp_code":       "123456",
		"otp_expires_at": &past,
	}).Error)

	err := svc.VerifyOTP(user.ID, &dto.VerifyOTPRequest{Code: "123456"})
	requireAppError(t, err, http.StatusBadRequest)
}

func TestUserVerifyIdentityOnce(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	user := createTestUser(t, db, models.UserRoleClient)

	require.NoError(t, svc.VerifyIdentity(user.ID, &dto.VerifyIdentityRequest{Cedula: "12345678"}))

	var fresh models.User
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.True(t, fresh.IdentityVerified)
	assert.Equal(t, "12345678", fresh.Cedula)

	err := svc.VerifyIdentity(user.ID, &dto.VerifyIdentityRequest{Cedula: "87654321"})
	requireAppError(t, err, http.StatusConflict)
}

func TestUserListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	createTestUser(t, db, models.UserRoleClient)
	createTestUser(t, db, models.UserRoleProfessional)
	createTestUser(t, db, models.UserRoleProfessional)

	users, pagination, err := svc.List("PROFESSIONAL", "", "", 1, 20)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, int64(2), pagination.Total)

	users, _, err = svc.List("", "", "", 1, 20)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestUserPublicProfileHidesPrivateFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	user := createTestUser(t, db, models.UserRoleProfessional)

	resp, err := svc.GetPublicProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, "PROFESSIONAL", resp.Role)
}
