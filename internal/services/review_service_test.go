package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services/dto"
)

func newReviewService(db *gorm.DB) ReviewService {
	return NewReviewService(db, repositories.NewReviewRepository(db), repositories.NewTransactionRepository(db))
}

func TestReviewCreateRefreshesRating(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	tx := createTestTransaction(t, db, client.ID, professional.ID, 100, models.TransactionStatusCompleted)

	resp, err := svc.Create(client.ID, &dto.CreateReviewRequest{
		TransactionID: tx.ID,
		Rating:        4,
		Comment:       "Buen trabajo, llegó puntual.",
	})
	require.NoError(t, err)
	assert.Equal(t, professional.ID, resp.RevieweeID)
	assert.Equal(t, 4, resp.Rating)

	var profile models.ProfessionalProfile
	require.NoError(t, db.First(&profile, "user_id = ?", professional.ID).Error)
	assert.Equal(t, 4.0, profile.Rating)
	assert.Equal(t, 1, profile.ReviewCount)

	// A second completed job averages in.
	second := createTestTransaction(t, db, client.ID, professional.ID, 80, models.TransactionStatusCompleted)
	_, err = svc.Create(client.ID, &dto.CreateReviewRequest{TransactionID: second.ID, Rating: 2})
	require.NoError(t, err)

	require.NoError(t, db.First(&profile, "user_id = ?", professional.ID).Error)
	assert.Equal(t, 3.0, profile.Rating)
	assert.Equal(t, 2, profile.ReviewCount)
}

func TestReviewCreateDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	tx := createTestTransaction(t, db, client.ID, professional.ID, 100, models.TransactionStatusCompleted)

	req := &dto.CreateReviewRequest{TransactionID: tx.ID, Rating: 5}
	_, err := svc.Create(client.ID, req)
	require.NoError(t, err)

	_, err = svc.Create(client.ID, req)
	requireAppError(t, err, http.StatusConflict)
}

func TestReviewBothSidesCanReview(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	tx := createTestTransaction(t, db, client.ID, professional.ID, 100, models.TransactionStatusCompleted)

	_, err := svc.Create(client.ID, &dto.CreateReviewRequest{TransactionID: tx.ID, Rating: 5})
	require.NoError(t, err)

	// The professional reviews the client; clients have no profile to refresh.
	resp, err := svc.Create(professional.ID, &dto.CreateReviewRequest{TransactionID: tx.ID, Rating: 3})
	require.NoError(t, err)
	assert.Equal(t, client.ID, resp.RevieweeID)
}

func TestReviewCreateNotParticipant(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	stranger := createTestUser(t, db, models.UserRoleClient)
	tx := createTestTransaction(t, db, client.ID, professional.ID, 100, models.TransactionStatusCompleted)

	_, err := svc.Create(stranger.ID, &dto.CreateReviewRequest{TransactionID: tx.ID, Rating: 5})
	requireAppError(t, err, http.StatusForbidden)
}

func TestReviewCreateBeforeCompletion(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	tx := createTestTransaction(t, db, client.ID, professional.ID, 100, models.TransactionStatusInProgress)

	_, err := svc.Create(client.ID, &dto.CreateReviewRequest{TransactionID: tx.ID, Rating: 5})
	requireAppError(t, err, http.StatusConflict)
}

func TestReviewListForTransaction(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	stranger := createTestUser(t, db, models.UserRoleClient)
	tx := createTestTransaction(t, db, client.ID, professional.ID, 100, models.TransactionStatusCompleted)

	_, err := svc.Create(client.ID, &dto.CreateReviewRequest{TransactionID: tx.ID, Rating: 5})
	require.NoError(t, err)
	_, err = svc.Create(professional.ID, &dto.CreateReviewRequest{TransactionID: tx.ID, Rating: 4})
	require.NoError(t, err)

	reviews, err := svc.ListForTransaction(client.ID, models.UserRoleClient, tx.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	_, err = svc.ListForTransaction(stranger.ID, models.UserRoleClient, tx.ID)
	requireAppError(t, err, http.StatusForbidden)

	reviews, err = svc.ListForTransaction(stranger.ID, models.UserRoleAdmin, tx.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}

func TestReviewDeleteRefreshesRating(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	professional := createTestUser(t, db, models.UserRoleProfessional)

	first := createTestTransaction(t, db, client.ID, professional.ID, 100, models.TransactionStatusCompleted)
	resp, err := svc.Create(client.ID, &dto.CreateReviewRequest{TransactionID: first.ID, Rating: 1})
	require.NoError(t, err)

	second := createTestTransaction(t, db, client.ID, professional.ID, 80, models.TransactionStatusCompleted)
	_, err = svc.Create(client.ID, &dto.CreateReviewRequest{TransactionID: second.ID, Rating: 5})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(resp.ID))

	var profile models.ProfessionalProfile
	require.NoError(t, db.First(&profile, "user_id = ?", professional.ID).Error)
	assert.Equal(t, 5.0, profile.Rating)
	assert.Equal(t, 1, profile.ReviewCount)

	err = svc.Delete(resp.ID)
	requireAppError(t, err, http.StatusNotFound)
}

func TestReviewListAll(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	professional := createTestUser(t, db, models.UserRoleProfessional)

	for i := 0; i < 3; i++ {
		tx := createTestTransaction(t, db, client.ID, professional.ID, 100, models.TransactionStatusCompleted)
		_, err := svc.Create(client.ID, &dto.CreateReviewRequest{TransactionID: tx.ID, Rating: 4})
		require.NoError(t, err)
	}

	reviews, pagination, err := svc.ListAll(1, 2)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.Equal(t, int64(3), pagination.Total)
}

func TestReviewListForUser(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	professional := createTestUser(t, db, models.UserRoleProfessional)

	for i := 0; i < 3; i++ {
		tx := createTestTransaction(t, db, client.ID, professional.ID, 100, models.TransactionStatusCompleted)
		_, err := svc.Create(client.ID, &dto.CreateReviewRequest{TransactionID: tx.ID, Rating: 5})
		require.NoError(t, err)
	}

	reviews, pagination, err := svc.ListForUser(professional.ID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.Equal(t, int64(3), pagination.Total)
	assert.Equal(t, 2, pagination.TotalPages)
	assert.True(t, pagination.HasNext)
}
