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

func newProfessionalService(db *gorm.DB) ProfessionalService {
	return NewProfessionalService(repositories.NewProfessionalRepository(db), repositories.NewProfessionRepository(db))
}

func TestProfessionalUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newProfessionalService(db)
	professional := createTestUser(t, db, models.UserRoleProfessional)

	bio := "Plomero con diez años de experiencia."
	city := "Valencia"
	rate := 25.0
	resp, err := svc.UpdateMyProfile(professional.ID, &dto.UpdateProfileRequest{
		Bio:        &bio,
		City:       &city,
		HourlyRate: &rate,
	})
	require.NoError(t, err)
	assert.Equal(t, bio, resp.Bio)
	assert.Equal(t, city, resp.City)
	assert.Equal(t, rate, resp.HourlyRate)
}

func TestProfessionalAddAndRemoveProfession(t *testing.T) {
	db := newTestDB(t)
	svc := newProfessionalService(db)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	profession := createTestProfession(t, db)

	link, err := svc.AddProfession(professional.ID, &dto.AddProfessionRequest{ProfessionID: profession.ID})
	require.NoError(t, err)
	assert.False(t, link.Verified)

	// The same profession cannot be added twice.
	_, err = svc.AddProfession(professional.ID, &dto.AddProfessionRequest{ProfessionID: profession.ID})
	requireAppError(t, err, http.StatusConflict)

	verified, err := svc.VerifyLink(link.ID)
	require.NoError(t, err)
	assert.True(t, verified.Verified)

	require.NoError(t, svc.RemoveProfession(professional.ID, link.ID))
}

func TestProfessionalListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := newProfessionalService(db)
	profession := createTestProfession(t, db)

	caracas := createTestUser(t, db, models.UserRoleProfessional)
	valencia := createTestUser(t, db, models.UserRoleProfessional)

	require.NoError(t, db.Model(&models.ProfessionalProfile{}).
		Where("user_id = ?", caracas.ID).
		Updates(map[string]interface{}{"city": "Caracas", "rating": 4.5, "bio": "Electricista certificado"}).Error)
	require.NoError(t, db.Model(&models.ProfessionalProfile{}).
		Where("user_id = ?", valencia.ID).
		Updates(map[string]interface{}{"city": "Valencia", "rating": 3.0}).Error)

	var caracasProfile models.ProfessionalProfile
	require.NoError(t, db.First(&caracasProfile, "user_id = ?", caracas.ID).Error)
	require.NoError(t, db.Create(&models.ProfessionLink{
		ProfessionalID: caracasProfile.ID,
		ProfessionID:   profession.ID,
	}).Error)

	all, pagination, err := svc.List(repositories.ProfileFilter{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, int64(2), pagination.Total)
	// Ordered best rated first.
	assert.Equal(t, caracas.ID, all[0].UserID)

	byCity, _, err := svc.List(repositories.ProfileFilter{City: "Caracas", Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Len(t, byCity, 1)
	assert.Equal(t, caracas.ID, byCity[0].UserID)

	byRating, _, err := svc.List(repositories.ProfileFilter{MinRating: 4, Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Len(t, byRating, 1)
	assert.Equal(t, caracas.ID, byRating[0].UserID)

	byProfession, _, err := svc.List(repositories.ProfileFilter{ProfessionID: profession.ID, Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Len(t, byProfession, 1)
	assert.Equal(t, caracas.ID, byProfession[0].UserID)

	bySearch, _, err := svc.List(repositories.ProfileFilter{Search: "Electricista", Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, caracas.ID, bySearch[0].UserID)
}
