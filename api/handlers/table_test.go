package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claritel/claritel_go_admin_service/config"
	"claritel/claritel_go_admin_service/models"
	"claritel/claritel_go_admin_service/pkg/logger"
	"claritel/claritel_go_admin_service/storage"
)

type fakeTableRepo struct {
	createFn func(ctx context.Context, assistantId string, req *models.CreateTableRequest) (*models.TableDefinition, error)
	getFn    func(ctx context.Context, id string) (*models.TableDefinition, error)
	updateFn func(ctx context.Context, id string, req *models.UpdateTableRequest) (*models.TableDefinition, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeTableRepo) Create(ctx context.Context, assistantId string, req *models.CreateTableRequest) (*models.TableDefinition, error) {
	return f.createFn(ctx, assistantId, req)
}

func (f *fakeTableRepo) CreateGroup(ctx context.Context, assistantId string, reqs []models.CreateTableRequest) ([]models.TableDefinition, error) {
	out := make([]models.TableDefinition, 0, len(reqs))
	for i := range reqs {
		table, err := f.createFn(ctx, assistantId, &reqs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *table)
	}
	return out, nil
}

func (f *fakeTableRepo) GetByID(ctx context.Context, id string) (*models.TableDefinition, error) {
	return f.getFn(ctx, id)
}

func (f *fakeTableRepo) GetAllByAssistant(ctx context.Context, assistantId string) ([]models.TableDefinition, error) {
	return nil, nil
}

func (f *fakeTableRepo) Update(ctx context.Context, id string, req *models.UpdateTableRequest) (*models.TableDefinition, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeTableRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeStorage struct {
	table *fakeTableRepo
}

func (f *fakeStorage) CloseDB()                          {}
func (f *fakeStorage) Company() storage.CompanyRepoI     { return nil }
func (f *fakeStorage) Assistant() storage.AssistantRepoI { return nil }
func (f *fakeStorage) Table() storage.TableRepoI         { return f.table }
func (f *fakeStorage) Record() storage.RecordRepoI       { return nil }
func (f *fakeStorage) Campaign() storage.CampaignRepoI   { return nil }
func (f *fakeStorage) ApiToken() storage.ApiTokenRepoI   { return nil }

func newTestRouter(t *testing.T, strg storage.StorageI) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewHandler(config.Config{}, logger.NewLogger("test", logger.LevelDebug), strg)

	router := gin.New()
	router.POST("/api/assistants/:assistantId/tables", h.CreateTable)
	router.GET("/api/tables/:tableId", h.GetTable)
	router.PUT("/api/tables/:tableId", h.UpdateTable)
	router.DELETE("/api/tables/:tableId", h.DeleteTable)
	return router
}

func TestCreateTable(t *testing.T) {
	strg := &fakeStorage{table: &fakeTableRepo{
		createFn: func(ctx context.Context, assistantId string, req *models.CreateTableRequest) (*models.TableDefinition, error) {
			assert.Equal(t, "ast-1", assistantId)
			return &models.TableDefinition{
				Id:          "tbl-1",
				AssistantId: assistantId,
				Name:        "customers",
				DisplayName: req.DisplayName,
				Columns: []models.Column{
					{Name: "customer_email", DisplayName: "Customer Email", Type: "string", IsPrimaryKey: true},
				},
			}, nil
		},
	}}

	body, _ := json.Marshal(models.CreateTableRequest{
		DisplayName: "Customers",
		Columns: []models.Column{
			{DisplayName: "Customer Email", Type: "string"},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/assistants/ast-1/tables", bytes.NewReader(body))
	newTestRouter(t, strg).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.TableDefinition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tbl-1", resp.Id)
	assert.True(t, resp.Columns[0].IsPrimaryKey)
}

func TestCreateTableMalformedBody(t *testing.T) {
	strg := &fakeStorage{table: &fakeTableRepo{}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/assistants/ast-1/tables", bytes.NewReader([]byte("{")))
	newTestRouter(t, strg).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateTableValidationError(t *testing.T) {
	strg := &fakeStorage{table: &fakeTableRepo{
		updateFn: func(ctx context.Context, id string, req *models.UpdateTableRequest) (*models.TableDefinition, error) {
			return nil, models.NewValidationError("a table can have at most one primary key column")
		},
	}}

	columns := []models.Column{
		{DisplayName: "A", Type: "string", IsPrimaryKey: true},
		{DisplayName: "B", Type: "string", IsPrimaryKey: true},
	}
	body, _ := json.Marshal(models.UpdateTableRequest{Columns: &columns})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/tables/tbl-1", bytes.NewReader(body))
	newTestRouter(t, strg).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a table can have at most one primary key column", resp.Message)
}

func TestGetTableNotFound(t *testing.T) {
	strg := &fakeStorage{table: &fakeTableRepo{
		getFn: func(ctx context.Context, id string) (*models.TableDefinition, error) {
			return nil, pgx.ErrNoRows
		},
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tables/missing", nil)
	newTestRouter(t, strg).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTable(t *testing.T) {
	strg := &fakeStorage{table: &fakeTableRepo{
		deleteFn: func(ctx context.Context, id string) error {
			assert.Equal(t, "tbl-1", id)
			return nil
		},
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/tables/tbl-1", nil)
	newTestRouter(t, strg).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
