package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"claritel/claritel_go_admin_service/config"
	"claritel/claritel_go_admin_service/models"
	"claritel/claritel_go_admin_service/storage"
)

type fakeTokenRepo struct {
	tokens map[string]*models.ApiToken
}

func (f *fakeTokenRepo) Create(ctx context.Context, label, secretHash string) (*models.ApiToken, error) {
	return nil, nil
}

func (f *fakeTokenRepo) GetByID(ctx context.Context, id string) (*models.ApiToken, error) {
	token, ok := f.tokens[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return token, nil
}

type fakeAuthStorage struct {
	tokens *fakeTokenRepo
}

func (f *fakeAuthStorage) CloseDB()                          {}
func (f *fakeAuthStorage) Company() storage.CompanyRepoI     { return nil }
func (f *fakeAuthStorage) Assistant() storage.AssistantRepoI { return nil }
func (f *fakeAuthStorage) Table() storage.TableRepoI         { return nil }
func (f *fakeAuthStorage) Record() storage.RecordRepoI       { return nil }
func (f *fakeAuthStorage) Campaign() storage.CampaignRepoI   { return nil }
func (f *fakeAuthStorage) ApiToken() storage.ApiTokenRepoI   { return f.tokens }

func authTestRouter(t *testing.T, cfg config.Config, strg storage.StorageI) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/api/ping", AuthMiddleware(cfg, strg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	router := authTestRouter(t, config.Config{}, &fakeAuthStorage{tokens: &fakeTokenRepo{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBootstrapToken(t *testing.T) {
	cfg := config.Config{BootstrapToken: "org_test_token"}
	router := authTestRouter(t, cfg, &fakeAuthStorage{tokens: &fakeTokenRepo{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer org_test_token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareIssuedToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	strg := &fakeAuthStorage{tokens: &fakeTokenRepo{
		tokens: map[string]*models.ApiToken{
			"tok-1": {Id: "tok-1", Label: "dashboard", SecretHash: string(hash)},
		},
	}}
	router := authTestRouter(t, config.Config{}, strg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer tok-1.s3cret")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer tok-1.wrong")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer unknown.s3cret")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
