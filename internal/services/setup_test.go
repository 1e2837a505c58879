package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"servimarket_backend/internal/auth"
	"servimarket_backend/internal/config"
	"servimarket_backend/internal/database"
	"servimarket_backend/internal/models"
	"servimarket_backend/pkg/apperrors"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	// The in-memory database lives on a single connection; pin the pool to it.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.JWT.RefreshTTL = 24
	cfg.Upload.MaxImageSize = 1024
	cfg.Upload.MaxDocumentSize = 2048
	cfg.Upload.MaxVideoSize = 4096
	cfg.Upload.AllowedTypes = []string{"image/png", "application/pdf", "video/mp4"}
	cfg.Chatbot.Provider = "rules"
	return cfg
}

func createTestUser(t *testing.T, db *gorm.DB, role models.UserRole) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: hash,
		Name:         "Test User",
		Role:         role,
		Status:       models.UserStatusActive,
	}
	require.NoError(t, db.Create(user).Error)

	if role == models.UserRoleProfessional {
		profile := &models.ProfessionalProfile{UserID: user.ID}
		require.NoError(t, db.Create(profile).Error)
	}
	return user
}

func createTestProfession(t *testing.T, db *gorm.DB) *models.Profession {
	t.Helper()
	profession := &models.Profession{
		Name:     "Plomería " + uuid.NewString()[:8],
		Category: "Hogar",
	}
	require.NoError(t, db.Create(profession).Error)
	return profession
}

func createTestPosting(t *testing.T, db *gorm.DB, clientID string) *models.ServicePosting {
	t.Helper()
	profession := createTestProfession(t, db)
	posting := &models.ServicePosting{
		ClientID:     clientID,
		ProfessionID: profession.ID,
		Title:        "Reparar tubería de la cocina",
		Description:  "Fuga de agua debajo del fregadero, se necesita plomero.",
		City:         "Caracas",
		BudgetMin:    50,
		BudgetMax:    150,
		Status:       models.PostingStatusOpen,
	}
	require.NoError(t, db.Create(posting).Error)
	return posting
}

func createTestOffer(t *testing.T, db *gorm.DB, postingID, professionalID string, amount float64) *models.Offer {
	t.Helper()
	offer := &models.Offer{
		PostingID:      postingID,
		ProfessionalID: professionalID,
		Amount:         amount,
		Status:         models.OfferStatusPending,
	}
	require.NoError(t, db.Create(offer).Error)
	return offer
}

// createTestTransaction wires up the posting, offer, transaction and pending
// payment the way an accepted offer would.
func createTestTransaction(t *testing.T, db *gorm.DB, clientID, professionalID string, amount float64, status models.TransactionStatus) *models.ServiceTransaction {
	t.Helper()
	posting := createTestPosting(t, db, clientID)
	offer := createTestOffer(t, db, posting.ID, professionalID, amount)

	tx := &models.ServiceTransaction{
		PostingID:      &posting.ID,
		OfferID:        offer.ID,
		ClientID:       clientID,
		ProfessionalID: professionalID,
		Amount:         amount,
		FinalAmount:    amount,
		Status:         status,
	}
	require.NoError(t, db.Create(tx).Error)

	payment := &models.Payment{
		TransactionID: tx.ID,
		Amount:        amount,
		Status:        models.PaymentStatusPending,
	}
	require.NoError(t, db.Create(payment).Error)
	return tx
}

// requireAppError asserts err is an AppError with the given HTTP status.
func requireAppError(t *testing.T, err error, httpCode int) *apperrors.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %T: %v", err, err)
	require.Equal(t, httpCode, appErr.HTTPCode, "unexpected HTTP code for %v", err)
	return appErr
}
