package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servimarket_backend/internal/database"
	"servimarket_backend/internal/middleware"
	"servimarket_backend/internal/services/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSuccessEnvelope(t *testing.T) {
	h := NewBaseHandler()
	router := gin.New()
	router.GET("/ok", func(c *gin.Context) {
		h.OK(c, gin.H{"value": 42})
	})
	router.GET("/list", func(c *gin.Context) {
		h.Paginated(c, []string{"a", "b"}, dto.NewPagination(1, 20, 2))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.NotNil(t, body["data"])
	assert.Nil(t, body["pagination"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/list", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	pagination, ok := body["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), pagination["total"])
	assert.Equal(t, float64(1), pagination["totalPages"])
}

func TestBindAndValidateErrors(t *testing.T) {
	h := NewBaseHandler()
	router := gin.New()
	router.POST("/echo", func(c *gin.Context) {
		var req dto.LoginRequest
		if !h.BindAndValidate(c, &req) {
			return
		}
		h.OK(c, req)
	})

	// Malformed JSON answers 400 BAD_REQUEST.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "BAD_REQUEST", errObj["code"])

	// Schema violations answer 422 with field details.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"email":"nope","password":""}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	errObj = body["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
	details := errObj["details"].(map[string]interface{})
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
}

func TestHealthEndpoint(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	h := NewHealthHandler(NewBaseHandler())
	router := gin.New()
	router.Use(middleware.DBMiddleware(db))
	router.GET("/health", h.Health)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "ok", data["status"])
}
