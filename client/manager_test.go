package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claritel/claritel_go_admin_service/models"
)

type fakeServer struct {
	t        *testing.T
	requests atomic.Int64

	table   models.TableDefinition
	records []models.Record

	// data of the last record update, exactly as submitted
	lastRecordUpdate map[string]any
}

func newFakeServer(t *testing.T) (*fakeServer, *httptest.Server) {
	fs := &fakeServer{
		t: t,
		table: models.TableDefinition{
			Id:          "tbl-1",
			AssistantId: "ast-1",
			Name:        "customers",
			DisplayName: "Customers",
			Columns: []models.Column{
				{Name: "customer_email", DisplayName: "Customer Email", Type: "string", IsPrimaryKey: true},
				{Name: "phone", DisplayName: "Phone", Type: "string"},
			},
		},
		records: []models.Record{
			{Id: "rec-1", TableId: "tbl-1", Data: map[string]any{"customer_email": "a@b.c", "phone": "1"}},
		},
	}

	// method dispatch is done inside the handlers because the Go 1.22
	// "METHOD /path" mux patterns are unavailable on the 1.21 toolchain
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tables/tbl-1", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			fs.requests.Add(1)
			_ = json.NewEncoder(w).Encode(fs.table)
		case http.MethodPut:
			fs.requests.Add(1)
			var req models.UpdateTableRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.NotNil(t, req.Columns)
			fs.table.Columns = *req.Columns
			_ = json.NewEncoder(w).Encode(fs.table)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/tables/tbl-1/records", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			fs.requests.Add(1)
			_ = json.NewEncoder(w).Encode(fs.records)
		case http.MethodPost:
			fs.requests.Add(1)
			var req models.InsertRecordsRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			for _, data := range req.Records {
				fs.records = append(fs.records, models.Record{
					Id:      "rec-new",
					TableId: "tbl-1",
					Data:    data,
				})
			}
			w.WriteHeader(http.StatusCreated)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/records/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			fs.requests.Add(1)
			var req models.UpdateRecordRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			fs.lastRecordUpdate = req.Data
			w.WriteHeader(http.StatusNoContent)
		case http.MethodDelete:
			fs.requests.Add(1)
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return fs, srv
}

func expandedManager(t *testing.T) (*fakeServer, *TableManager) {
	fs, srv := newFakeServer(t)
	m := NewTableManager(New(srv.URL, "org_test_token"), "tbl-1")
	require.NoError(t, m.Expand(context.Background()))
	return fs, m
}

func TestTableManagerExpand(t *testing.T) {
	_, m := expandedManager(t)

	assert.Equal(t, StateSchemaTab, m.State())
	require.NotNil(t, m.Table())
	assert.Len(t, m.Table().Columns, 2)
	assert.Len(t, m.Records(), 1)
}

func TestTableManagerTabSwitching(t *testing.T) {
	_, m := expandedManager(t)

	m.ShowDataTab()
	assert.Equal(t, StateDataTab, m.State())

	m.ShowSchemaTab()
	assert.Equal(t, StateSchemaTab, m.State())

	m.Collapse()
	assert.Equal(t, StateCollapsed, m.State())

	// tab switches on a collapsed panel are ignored
	m.ShowDataTab()
	assert.Equal(t, StateCollapsed, m.State())
}

func TestAddColumnValidationSkipsNetwork(t *testing.T) {
	fs, m := expandedManager(t)
	before := fs.requests.Load()

	err := m.AddColumn(context.Background(), "   ", "string", false, false)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, before, fs.requests.Load())

	err = m.AddColumn(context.Background(), "Extra Key", "string", false, true)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, before, fs.requests.Load())

	err = m.AddColumn(context.Background(), "Phone", "string", false, false)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, before, fs.requests.Load())
}

func TestAddColumnSubmitsWholeSet(t *testing.T) {
	fs, m := expandedManager(t)

	require.NoError(t, m.AddColumn(context.Background(), "Full Name", "string", true, false))

	require.Len(t, fs.table.Columns, 3)
	assert.Equal(t, "full_name", fs.table.Columns[2].Name)
	assert.True(t, fs.table.Columns[0].IsPrimaryKey)
	assert.Len(t, m.Table().Columns, 3)
}

func TestDeleteColumnPromotesPrimary(t *testing.T) {
	fs, m := expandedManager(t)

	require.NoError(t, m.DeleteColumn(context.Background(), "customer_email"))

	require.Len(t, fs.table.Columns, 1)
	assert.Equal(t, "phone", fs.table.Columns[0].Name)
	assert.True(t, fs.table.Columns[0].IsPrimaryKey)
}

func TestAddRecordFillsDefaults(t *testing.T) {
	fs, m := expandedManager(t)

	require.NoError(t, m.AddRecord(context.Background(), map[string]any{"customer_email": "x@y.z"}))

	require.Len(t, fs.records, 2)
	assert.Equal(t, "x@y.z", fs.records[1].Data["customer_email"])
	assert.Equal(t, "", fs.records[1].Data["phone"])
	assert.Len(t, m.Records(), 2)
}

func TestEditRecordSubmitsWholeData(t *testing.T) {
	fs, m := expandedManager(t)

	// rec-1 currently holds customer_email and phone; the edit submits
	// only phone and the stored keys must not be merged back in
	require.NoError(t, m.EditRecord(context.Background(), "rec-1", map[string]any{"phone": "2"}))

	require.NotNil(t, fs.lastRecordUpdate)
	assert.Equal(t, map[string]any{"phone": "2"}, fs.lastRecordUpdate)
	assert.NotContains(t, fs.lastRecordUpdate, "customer_email")

	assert.Equal(t, map[string]any{"phone": "2"}, m.Records()[0].Data)
}

func TestEditRecordRejectsConcurrentSave(t *testing.T) {
	_, m := expandedManager(t)

	m.mu.Lock()
	m.saving["rec-1"] = true
	m.mu.Unlock()

	err := m.EditRecord(context.Background(), "rec-1", map[string]any{"phone": "2"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestDeleteRecordDropsLocalRow(t *testing.T) {
	_, m := expandedManager(t)

	require.NoError(t, m.DeleteRecord(context.Background(), "rec-1"))
	assert.Empty(t, m.Records())
}

func TestClientUsesTransportDefaultTimeout(t *testing.T) {
	c := New("http://localhost", "org_test_token")
	assert.Zero(t, c.httpClient.Timeout)
}

func TestPersistenceErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "duplicate key"})
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, "org_test_token")
	_, err := c.GetTable(context.Background(), "tbl-1")
	require.Error(t, err)
	assert.True(t, IsPersistenceError(err))
	assert.Equal(t, "duplicate key", err.Error())
}

func TestPersistenceErrorFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, "org_test_token")
	_, err := c.GetTable(context.Background(), "tbl-1")
	require.Error(t, err)
	assert.True(t, IsPersistenceError(err))
	assert.Equal(t, "request failed with status 500", err.Error())
}

func TestExpandFailureCollapses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "not found"})
	}))
	t.Cleanup(srv.Close)

	m := NewTableManager(New(srv.URL, "org_test_token"), "tbl-1")
	err := m.Expand(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateCollapsed, m.State())
}
