package services

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services/dto"
)

func newPostingService(db *gorm.DB) PostingService {
	return NewPostingService(repositories.NewPostingRepository(db), repositories.NewProfessionRepository(db))
}

func TestPostingCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newPostingService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	profession := createTestProfession(t, db)

	resp, err := svc.Create(client.ID, &dto.CreatePostingRequest{
		ProfessionID: profession.ID,
		Title:        "Instalar lámpara en la sala",
		Description:  "Necesito instalar una lámpara de techo, ya tengo el material.",
		City:         "Valencia",
		BudgetMin:    20,
		BudgetMax:    60,
	})
	require.NoError(t, err)
	assert.Equal(t, "OPEN", resp.Status)
	assert.Equal(t, client.ID, resp.ClientID)
}

func TestPostingGetCountsViews(t *testing.T) {
	db := newTestDB(t)
	svc := newPostingService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	posting := createTestPosting(t, db, client.ID)

	_, err := svc.Get(posting.ID, true)
	require.NoError(t, err)
	_, err = svc.Get(posting.ID, true)
	require.NoError(t, err)
	_, err = svc.Get(posting.ID, false)
	require.NoError(t, err)

	var fresh models.ServicePosting
	require.NoError(t, db.First(&fresh, "id = ?", posting.ID).Error)
	assert.Equal(t, 2, fresh.Views)
}

func TestPostingDeleteGuardedByTransactions(t *testing.T) {
	db := newTestDB(t)
	svc := newPostingService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	professional := createTestUser(t, db, models.UserRoleProfessional)
	tx := createTestTransaction(t, db, client.ID, professional.ID, 100, models.TransactionStatusPending)

	err := svc.Delete(client.ID, models.UserRoleClient, *tx.PostingID)
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, "VALIDATION_ERROR", string(appErr.Code))

	// A posting without transactions deletes cleanly.
	clean := createTestPosting(t, db, client.ID)
	require.NoError(t, svc.Delete(client.ID, models.UserRoleClient, clean.ID))

	_, err = svc.Get(clean.ID, false)
	requireAppError(t, err, http.StatusNotFound)
}

func TestPostingDeleteNotOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newPostingService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	stranger := createTestUser(t, db, models.UserRoleClient)
	posting := createTestPosting(t, db, client.ID)

	err := svc.Delete(stranger.ID, models.UserRoleClient, posting.ID)
	requireAppError(t, err, http.StatusForbidden)
}

func TestPostingDeleteByAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := newPostingService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	admin := createTestUser(t, db, models.UserRoleAdmin)
	posting := createTestPosting(t, db, client.ID)

	require.NoError(t, svc.Delete(admin.ID, models.UserRoleAdmin, posting.ID))

	_, err := svc.Get(posting.ID, false)
	requireAppError(t, err, http.StatusNotFound)
}

func TestPostingUpdateBudgetGuard(t *testing.T) {
	db := newTestDB(t)
	svc := newPostingService(db)
	client := createTestUser(t, db, models.UserRoleClient)
	posting := createTestPosting(t, db, client.ID)

	lowMax := 10.0
	_, err := svc.Update(client.ID, posting.ID, &dto.UpdatePostingRequest{BudgetMax: &lowMax})
	requireAppError(t, err, http.StatusBadRequest)
}

func TestProfessionDeleteGuardedByUse(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfessionService(repositories.NewProfessionRepository(db))
	client := createTestUser(t, db, models.UserRoleClient)
	posting := createTestPosting(t, db, client.ID)

	err := svc.Delete(posting.ProfessionID)
	requireAppError(t, err, http.StatusBadRequest)

	unused := createTestProfession(t, db)
	assert.NoError(t, svc.Delete(unused.ID))
}

func TestProfessionListPaginated(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfessionService(repositories.NewProfessionRepository(db))

	for i := 1; i <= 12; i++ {
		profession := &models.Profession{
			Name:     fmt.Sprintf("Oficio %02d", i),
			Category: "Hogar",
		}
		require.NoError(t, db.Create(profession).Error)
	}

	resp, pagination, err := svc.List(repositories.ProfessionFilter{Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, resp, 5)
	assert.Equal(t, int64(12), pagination.Total)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.Equal(t, "Oficio 06", resp[0].Name)

	// Search matches name or description.
	garden := &models.Profession{Name: "Jardines", Category: "Exterior", Description: "Poda y mantenimiento"}
	require.NoError(t, db.Create(garden).Error)

	resp, pagination, err = svc.List(repositories.ProfessionFilter{Search: "Poda", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Jardines", resp[0].Name)
	assert.Equal(t, int64(1), pagination.Total)
}

func TestProfessionCreateDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfessionService(repositories.NewProfessionRepository(db))

	_, err := svc.Create(&dto.CreateProfessionRequest{Name: "Electricidad", Category: "Hogar"})
	require.NoError(t, err)

	_, err = svc.Create(&dto.CreateProfessionRequest{Name: "Electricidad"})
	requireAppError(t, err, http.StatusConflict)
}
