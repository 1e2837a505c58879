package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servimarket_backend/internal/auth"
	"servimarket_backend/internal/config"
	"servimarket_backend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	return cfg
}

func newAuthRouter(cfg *config.Config, roles ...models.UserRole) *gin.Engine {
	router := gin.New()
	group := router.Group("/", AuthMiddleware(cfg))
	if len(roles) > 0 {
		group.Use(RequireRoles(roles...))
	}
	group.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": CurrentUserID(c),
			"role":   string(CurrentRole(c)),
		})
	})
	return router
}

func doRequest(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	cfg := testAuthConfig()
	token, err := auth.GenerateToken("user-1", models.UserRoleClient, cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)

	rec := doRequest(newAuthRouter(cfg), "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-1")
	assert.Contains(t, rec.Body.String(), "CLIENT")
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	rec := doRequest(newAuthRouter(testAuthConfig()), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	rec := doRequest(newAuthRouter(testAuthConfig()), "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	cfg := testAuthConfig()
	token, err := auth.GenerateToken("user-1", models.UserRoleClient, "wrong-secret", time.Hour)
	require.NoError(t, err)

	rec := doRequest(newAuthRouter(cfg), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoles(t *testing.T) {
	cfg := testAuthConfig()
	adminOnly := newAuthRouter(cfg, models.UserRoleAdmin)

	clientToken, err := auth.GenerateToken("user-1", models.UserRoleClient, cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)
	rec := doRequest(adminOnly, "Bearer "+clientToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken, err := auth.GenerateToken("admin-1", models.UserRoleAdmin, cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)
	rec = doRequest(adminOnly, "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}
