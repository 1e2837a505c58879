package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services/dto"
)

func newReportService(db *gorm.DB) ReportService {
	return NewReportService(repositories.NewReportRepository(db), repositories.NewUserRepository(db))
}

func createTestReport(t *testing.T, svc ReportService, reporterID, reportedID string) *dto.ReportResponse {
	t.Helper()
	report, err := svc.Create(reporterID, &dto.CreateReportRequest{
		ReportedUserID: reportedID,
		Reason:         "Comportamiento inapropiado",
	})
	require.NoError(t, err)
	return report
}

func TestReportCreateSelf(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	client := createTestUser(t, db, models.UserRoleClient)

	_, err := svc.Create(client.ID, &dto.CreateReportRequest{
		ReportedUserID: client.ID,
		Reason:         "Prueba",
	})
	requireAppError(t, err, http.StatusBadRequest)
}

func TestReportResolveSuspendsReportedUser(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	report := createTestReport(t, svc, client.ID, professional.ID)

	token := &models.RefreshToken{
		UserID:    professional.ID,
		Token:     "token-" + professional.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(token).Error)

	resp, err := svc.UpdateStatus(report.ID, &dto.UpdateReportStatusRequest{
		Status:      "RESOLVED",
		Resolution:  "Cuenta suspendida por abuso",
		SuspendUser: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "RESOLVED", resp.Status)

	var reported models.User
	require.NoError(t, db.First(&reported, "id = ?", professional.ID).Error)
	assert.Equal(t, models.UserStatusSuspended, reported.Status)

	// Sessions of the suspended user are revoked.
	var tokens int64
	require.NoError(t, db.Model(&models.RefreshToken{}).Where("user_id = ?", professional.ID).Count(&tokens).Error)
	assert.Equal(t, int64(0), tokens)
}

func TestReportResolveWithoutSuspendFlag(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	report := createTestReport(t, svc, client.ID, professional.ID)

	_, err := svc.UpdateStatus(report.ID, &dto.UpdateReportStatusRequest{Status: "RESOLVED"})
	require.NoError(t, err)

	var reported models.User
	require.NoError(t, db.First(&reported, "id = ?", professional.ID).Error)
	assert.Equal(t, models.UserStatusActive, reported.Status)
}

func TestReportResolveCannotSuspendAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	admin := createTestUser(t, db, models.UserRoleAdmin)
	report := createTestReport(t, svc, client.ID, admin.ID)

	_, err := svc.UpdateStatus(report.ID, &dto.UpdateReportStatusRequest{
		Status:      "RESOLVED",
		SuspendUser: true,
	})
	requireAppError(t, err, http.StatusForbidden)
}
