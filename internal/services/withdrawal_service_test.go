package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"servimarket_backend/internal/email"
	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services/dto"
)

func newWithdrawalService(db *gorm.DB) WithdrawalService {
	return NewWithdrawalService(db, repositories.NewWithdrawalRepository(db), repositories.NewUserRepository(db), &email.NoopProvider{})
}

func setBalance(t *testing.T, db *gorm.DB, userID string, balance float64) {
	t.Helper()
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", userID).Update("balance", balance).Error)
}

func TestWithdrawalCreateDebitsBalance(t *testing.T) {
	db := newTestDB(t)
	svc := newWithdrawalService(db)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	setBalance(t, db, professional.ID, 100)

	resp, err := svc.Create(professional.ID, &dto.CreateWithdrawalRequest{
		Amount:         60,
		Method:         "PAGO_MOVIL",
		AccountDetails: "0414-1234567, CI 12345678",
	})
	require.NoError(t, err)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, 60.0, resp.Amount)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", professional.ID).Error)
	assert.Equal(t, 40.0, user.Balance)
}

func TestWithdrawalCreateInsufficientBalance(t *testing.T) {
	db := newTestDB(t)
	svc := newWithdrawalService(db)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	setBalance(t, db, professional.ID, 30)

	_, err := svc.Create(professional.ID, &dto.CreateWithdrawalRequest{
		Amount:         60,
		Method:         "ZELLE",
		AccountDetails: "pro@example.com",
	})
	requireAppError(t, err, http.StatusBadRequest)

	// The balance stays untouched.
	var user models.User
	require.NoError(t, db.First(&user, "id = ?", professional.ID).Error)
	assert.Equal(t, 30.0, user.Balance)
}

func TestWithdrawalRejectionRefundsBalance(t *testing.T) {
	db := newTestDB(t)
	svc := newWithdrawalService(db)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	setBalance(t, db, professional.ID, 100)

	created, err := svc.Create(professional.ID, &dto.CreateWithdrawalRequest{
		Amount:         60,
		Method:         "BANK_TRANSFER",
		AccountDetails: "Banco de Venezuela 0102...",
	})
	require.NoError(t, err)

	resp, err := svc.UpdateStatus(created.ID, &dto.UpdateWithdrawalStatusRequest{
		Status:          "REJECTED",
		RejectionReason: "Datos de cuenta incompletos",
	})
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", resp.Status)
	assert.Equal(t, "Datos de cuenta incompletos", resp.RejectionReason)
	require.NotNil(t, resp.ProcessedAt)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", professional.ID).Error)
	assert.Equal(t, 100.0, user.Balance)
}

func TestWithdrawalApprovalFlow(t *testing.T) {
	db := newTestDB(t)
	svc := newWithdrawalService(db)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	setBalance(t, db, professional.ID, 100)

	created, err := svc.Create(professional.ID, &dto.CreateWithdrawalRequest{
		Amount:         60,
		Method:         "ZELLE",
		AccountDetails: "pro@example.com",
	})
	require.NoError(t, err)

	for _, status := range []string{"APPROVED", "PROCESSING", "COMPLETED"} {
		resp, err := svc.UpdateStatus(created.ID, &dto.UpdateWithdrawalStatusRequest{Status: status})
		require.NoError(t, err)
		assert.Equal(t, status, resp.Status)
	}

	// Completed withdrawals never refund.
	var user models.User
	require.NoError(t, db.First(&user, "id = ?", professional.ID).Error)
	assert.Equal(t, 40.0, user.Balance)
}

func TestWithdrawalFreeFormStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newWithdrawalService(db)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	setBalance(t, db, professional.ID, 100)

	created, err := svc.Create(professional.ID, &dto.CreateWithdrawalRequest{
		Amount:         60,
		Method:         "ZELLE",
		AccountDetails: "pro@example.com",
	})
	require.NoError(t, err)

	// The admin jumps straight to COMPLETED; no refund happens.
	resp, err := svc.UpdateStatus(created.ID, &dto.UpdateWithdrawalStatusRequest{Status: "COMPLETED"})
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", resp.Status)
	require.NotNil(t, resp.ProcessedAt)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", professional.ID).Error)
	assert.Equal(t, 40.0, user.Balance)

	// Moving into REJECTED refunds once, even from COMPLETED.
	_, err = svc.UpdateStatus(created.ID, &dto.UpdateWithdrawalStatusRequest{
		Status:          "REJECTED",
		RejectionReason: "Transferencia devuelta por el banco",
	})
	require.NoError(t, err)
	require.NoError(t, db.First(&user, "id = ?", professional.ID).Error)
	assert.Equal(t, 100.0, user.Balance)

	// Re-rejecting does not refund a second time.
	_, err = svc.UpdateStatus(created.ID, &dto.UpdateWithdrawalStatusRequest{Status: "REJECTED"})
	require.NoError(t, err)
	require.NoError(t, db.First(&user, "id = ?", professional.ID).Error)
	assert.Equal(t, 100.0, user.Balance)

	// Leaving REJECTED holds the amount again and clears the rejection fields.
	resp, err = svc.UpdateStatus(created.ID, &dto.UpdateWithdrawalStatusRequest{Status: "APPROVED"})
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", resp.Status)
	assert.Empty(t, resp.RejectionReason)
	assert.Nil(t, resp.ProcessedAt)
	require.NoError(t, db.First(&user, "id = ?", professional.ID).Error)
	assert.Equal(t, 40.0, user.Balance)
}

func TestWithdrawalReholdNeedsBalance(t *testing.T) {
	db := newTestDB(t)
	svc := newWithdrawalService(db)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	setBalance(t, db, professional.ID, 60)

	created, err := svc.Create(professional.ID, &dto.CreateWithdrawalRequest{
		Amount:         60,
		Method:         "ZELLE",
		AccountDetails: "pro@example.com",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(created.ID, &dto.UpdateWithdrawalStatusRequest{
		Status:          "REJECTED",
		RejectionReason: "Datos incompletos",
	})
	require.NoError(t, err)

	// The refunded amount gets spent elsewhere before the admin reopens.
	setBalance(t, db, professional.ID, 10)

	_, err = svc.UpdateStatus(created.ID, &dto.UpdateWithdrawalStatusRequest{Status: "APPROVED"})
	requireAppError(t, err, http.StatusBadRequest)

	// Nothing moved, the withdrawal stays rejected.
	fresh, err := svc.Get(professional.ID, models.UserRoleProfessional, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", fresh.Status)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", professional.ID).Error)
	assert.Equal(t, 10.0, user.Balance)
}

func TestWithdrawalGetOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newWithdrawalService(db)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	stranger := createTestUser(t, db, models.UserRoleProfessional)
	admin := createTestUser(t, db, models.UserRoleAdmin)
	setBalance(t, db, professional.ID, 100)

	created, err := svc.Create(professional.ID, &dto.CreateWithdrawalRequest{
		Amount:         60,
		Method:         "ZELLE",
		AccountDetails: "pro@example.com",
	})
	require.NoError(t, err)

	_, err = svc.Get(professional.ID, models.UserRoleProfessional, created.ID)
	assert.NoError(t, err)

	_, err = svc.Get(admin.ID, models.UserRoleAdmin, created.ID)
	assert.NoError(t, err)

	_, err = svc.Get(stranger.ID, models.UserRoleProfessional, created.ID)
	requireAppError(t, err, http.StatusForbidden)
}
