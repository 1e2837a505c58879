package services

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/storage"
)

func newUploadService(t *testing.T, db *gorm.DB) UploadService {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir(), "/files")
	require.NoError(t, err)
	return NewUploadService(testConfig(), repositories.NewUploadRepository(db), store)
}

func TestUploadAndList(t *testing.T) {
	db := newTestDB(t)
	svc := newUploadService(t, db)
	user := createTestUser(t, db, models.UserRoleProfessional)

	content := strings.NewReader("fake png bytes")
	resp, err := svc.Upload(user.ID, "certification", "diploma.png", "image/png", int64(content.Len()), content)
	require.NoError(t, err)
	assert.Equal(t, "certification", resp.Kind)
	assert.Equal(t, "diploma.png", resp.FileName)
	assert.True(t, strings.HasPrefix(resp.URL, "/files/"))

	uploads, err := svc.ListMine(user.ID)
	require.NoError(t, err)
	assert.Len(t, uploads, 1)
}

func TestUploadRejectsUnknownKind(t *testing.T) {
	db := newTestDB(t)
	svc := newUploadService(t, db)
	user := createTestUser(t, db, models.UserRoleProfessional)

	_, err := svc.Upload(user.ID, "avatar", "x.png", "image/png", 10, strings.NewReader("x"))
	requireAppError(t, err, http.StatusBadRequest)
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	db := newTestDB(t)
	svc := newUploadService(t, db)
	user := createTestUser(t, db, models.UserRoleProfessional)

	_, err := svc.Upload(user.ID, "portfolio", "script.sh", "application/x-sh", 10, strings.NewReader("x"))
	requireAppError(t, err, http.StatusBadRequest)
}

func TestUploadSizeLimitsPerCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newUploadService(t, db)
	user := createTestUser(t, db, models.UserRoleProfessional)

	// testConfig: images 1024, documents 2048, videos 4096.
	_, err := svc.Upload(user.ID, "portfolio", "big.png", "image/png", 2000, strings.NewReader("x"))
	requireAppError(t, err, http.StatusBadRequest)

	_, err = svc.Upload(user.ID, "certification", "doc.pdf", "application/pdf", 2000, strings.NewReader("x"))
	assert.NoError(t, err)

	_, err = svc.Upload(user.ID, "portfolio", "clip.mp4", "video/mp4", 5000, strings.NewReader("x"))
	requireAppError(t, err, http.StatusBadRequest)

	_, err = svc.Upload(user.ID, "portfolio", "clip.mp4", "video/mp4", 3000, strings.NewReader("x"))
	assert.NoError(t, err)
}

func TestUploadDeleteOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newUploadService(t, db)
	user := createTestUser(t, db, models.UserRoleProfessional)
	stranger := createTestUser(t, db, models.UserRoleProfessional)

	resp, err := svc.Upload(user.ID, "portfolio", "foto.png", "image/png", 10, strings.NewReader("x"))
	require.NoError(t, err)

	err = svc.Delete(stranger.ID, resp.ID)
	requireAppError(t, err, http.StatusForbidden)

	require.NoError(t, svc.Delete(user.ID, resp.ID))

	uploads, err := svc.ListMine(user.ID)
	require.NoError(t, err)
	assert.Empty(t, uploads)
}
