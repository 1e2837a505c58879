package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
)

func newPaymentService(db *gorm.DB) PaymentService {
	return NewPaymentService(db, repositories.NewTransactionRepository(db))
}

func TestPaymentGetParticipantsOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	stranger := createTestUser(t, db, models.UserRoleClient)
	tx := createTestTransaction(t, db, client.ID, professional.ID, 100, models.TransactionStatusPending)

	var payment models.Payment
	require.NoError(t, db.First(&payment, "transaction_id = ?", tx.ID).Error)

	resp, err := svc.Get(client.ID, models.UserRoleClient, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, resp.Amount)

	_, err = svc.Get(stranger.ID, models.UserRoleClient, payment.ID)
	requireAppError(t, err, http.StatusForbidden)

	_, err = svc.Get(stranger.ID, models.UserRoleAdmin, payment.ID)
	require.NoError(t, err)
}

func TestPaymentListMine(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	otherClient := createTestUser(t, db, models.UserRoleClient)
	otherProfessional := createTestUser(t, db, models.UserRoleProfessional)

	createTestTransaction(t, db, client.ID, professional.ID, 100, models.TransactionStatusPending)
	createTestTransaction(t, db, client.ID, professional.ID, 80, models.TransactionStatusPending)
	createTestTransaction(t, db, otherClient.ID, otherProfessional.ID, 60, models.TransactionStatusPending)

	mine, pagination, err := svc.ListMine(client.ID, "", 1, 20)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	assert.Equal(t, int64(2), pagination.Total)

	// The professional side sees the same payments.
	theirs, _, err := svc.ListMine(professional.ID, "", 1, 20)
	require.NoError(t, err)
	assert.Len(t, theirs, 2)

	none, _, err := svc.ListMine(client.ID, string(models.PaymentStatusCompleted), 1, 20)
	require.NoError(t, err)
	assert.Empty(t, none)
}
