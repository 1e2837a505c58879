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

func TestPromoCreateUppercasesCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromoService(repositories.NewPromoRepository(db))

	resp, err := svc.Create(&dto.CreatePromoCodeRequest{
		Code:         "  verano25 ",
		DiscountType: "PERCENTAGE",
		Value:        25,
		MaxUses:      10,
		ValidFrom:    time.Now().Add(-time.Hour),
		ValidUntil:   time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "VERANO25", resp.Code)
	assert.True(t, resp.IsActive)
}

func TestPromoValidate(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromoService(repositories.NewPromoRepository(db))
	createTestPromoCode(t, db, "ACTIVO", models.DiscountTypeFixed, 15, 10)

	// Lookup is case-insensitive on the caller's side.
	resp, err := svc.Validate("activo")
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, "FIXED", resp.DiscountType)
	assert.Equal(t, 15.0, resp.Value)

	resp, err = svc.Validate("NOEXISTE")
	require.NoError(t, err)
	assert.False(t, resp.Valid)
}

func TestPromoValidateExpired(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromoService(repositories.NewPromoRepository(db))

	promo := &models.PromoCode{
		Code:         "VENCIDO",
		DiscountType: models.DiscountTypeFixed,
		Value:        10,
		MaxUses:      10,
		ValidFrom:    time.Now().Add(-48 * time.Hour),
		ValidUntil:   time.Now().Add(-24 * time.Hour),
		IsActive:     true,
	}
	require.NoError(t, db.Create(promo).Error)

	resp, err := svc.Validate("VENCIDO")
	require.NoError(t, err)
	assert.False(t, resp.Valid)
}

func TestPromoListSearch(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromoService(repositories.NewPromoRepository(db))
	createTestPromoCode(t, db, "VERANO25", models.DiscountTypePercentage, 25, 10)
	createTestPromoCode(t, db, "INVIERNO10", models.DiscountTypeFixed, 10, 10)

	described := &models.PromoCode{
		Code:         "BIENVENIDA",
		Description:  "Descuento de verano para nuevos usuarios",
		DiscountType: models.DiscountTypeFixed,
		Value:        5,
		MaxUses:      100,
		ValidFrom:    time.Now().Add(-time.Hour),
		ValidUntil:   time.Now().Add(24 * time.Hour),
		IsActive:     true,
	}
	require.NoError(t, db.Create(described).Error)

	// Search matches code or description, regardless of case.
	codes, pagination, err := svc.List(repositories.PromoFilter{Search: "verano", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), pagination.Total)
	require.Len(t, codes, 2)

	codes, _, err = svc.List(repositories.PromoFilter{Search: "INVIERNO", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, "INVIERNO10", codes[0].Code)
}

func TestPromoUpdateMaxUsesBelowCurrent(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromoService(repositories.NewPromoRepository(db))
	promo := createTestPromoCode(t, db, "USADO", models.DiscountTypeFixed, 10, 10)
	require.NoError(t, db.Model(promo).Update("uses_count", 5).Error)

	lower := 3
	_, err := svc.Update(promo.ID, &dto.UpdatePromoCodeRequest{MaxUses: &lower})
	requireAppError(t, err, http.StatusBadRequest)

	higher := 20
	resp, err := svc.Update(promo.ID, &dto.UpdatePromoCodeRequest{MaxUses: &higher})
	require.NoError(t, err)
	assert.Equal(t, 20, resp.MaxUses)
}

func TestPromoDeleteGuardedByUsage(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromoService(repositories.NewPromoRepository(db))
	client := createTestUser(t, db, models.UserRoleClient)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	promo := createTestPromoCode(t, db, "ENUSO", models.DiscountTypeFixed, 10, 10)
	tx := createTestTransaction(t, db, client.ID, professional.ID, 100, models.TransactionStatusPending)

	usage := &models.PromoCodeUsage{
		PromoCodeID:   promo.ID,
		UserID:        client.ID,
		TransactionID: tx.ID,
		Discount:      10,
	}
	require.NoError(t, db.Create(usage).Error)

	err := svc.Delete(promo.ID)
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, "VALIDATION_ERROR", string(appErr.Code))

	fresh := createTestPromoCode(t, db, "SINUSO", models.DiscountTypeFixed, 10, 10)
	assert.NoError(t, svc.Delete(fresh.ID))
}
