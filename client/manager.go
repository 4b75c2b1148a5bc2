package client

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"claritel/claritel_go_admin_service/models"
	"claritel/claritel_go_admin_service/pkg/helper"
)

// ViewState tracks where one table panel is in its lifecycle.
type ViewState string

const (
	StateCollapsed ViewState = "collapsed"
	StateLoading   ViewState = "loading"
	StateSchemaTab ViewState = "schema"
	StateDataTab   ViewState = "data"
)

// TableManager holds the working copy of one table panel: its schema,
// its loaded records and the view state. Schema edits are validated
// against the local column set before anything is sent, and local state
// only ever advances after the server accepts the change.
type TableManager struct {
	client  *Client
	tableId string

	mu      sync.Mutex
	state   ViewState
	table   *models.TableDefinition
	records []models.Record

	// rows with a save in flight, keyed by record id
	saving map[string]bool
}

func NewTableManager(client *Client, tableId string) *TableManager {
	return &TableManager{
		client:  client,
		tableId: tableId,
		state:   StateCollapsed,
		saving:  map[string]bool{},
	}
}

func (m *TableManager) State() ViewState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *TableManager) Table() *models.TableDefinition {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.table
}

func (m *TableManager) Records() []models.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records
}

// Expand loads the schema and the records together and lands on the
// schema tab. A failed load drops the panel back to collapsed.
func (m *TableManager) Expand(ctx context.Context) error {
	m.mu.Lock()
	if m.state != StateCollapsed {
		m.mu.Unlock()
		return nil
	}
	m.state = StateLoading
	m.mu.Unlock()

	var (
		table   *models.TableDefinition
		records []models.Record
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		table, err = m.client.GetTable(gctx, m.tableId)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = m.client.GetRecords(gctx, m.tableId)
		return err
	})

	if err := g.Wait(); err != nil {
		m.mu.Lock()
		m.state = StateCollapsed
		m.mu.Unlock()
		return err
	}

	m.mu.Lock()
	m.table = table
	m.records = records
	m.state = StateSchemaTab
	m.mu.Unlock()
	return nil
}

func (m *TableManager) Collapse() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateCollapsed
}

func (m *TableManager) ShowSchemaTab() {
	m.switchTab(StateSchemaTab)
}

func (m *TableManager) ShowDataTab() {
	m.switchTab(StateDataTab)
}

func (m *TableManager) switchTab(to ViewState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateSchemaTab || m.state == StateDataTab {
		m.state = to
	}
}

// AddColumn validates the new column against the current set, submits
// the whole updated array and adopts the server's copy on success.
func (m *TableManager) AddColumn(ctx context.Context, displayName, columnType string, required, isPrimaryKey bool) error {
	m.mu.Lock()
	table := m.table
	m.mu.Unlock()
	if table == nil {
		return models.NewValidationError("table is not loaded")
	}

	columns, err := helper.AddColumn(table.Columns, displayName, columnType, required, isPrimaryKey)
	if err != nil {
		return err
	}

	return m.submitColumns(ctx, columns)
}

// EditColumn re-derives the column name from the new display name; a
// rename that collides with another column is rejected locally.
func (m *TableManager) EditColumn(ctx context.Context, existingName, displayName, columnType string, required, isPrimaryKey bool) error {
	m.mu.Lock()
	table := m.table
	m.mu.Unlock()
	if table == nil {
		return models.NewValidationError("table is not loaded")
	}

	columns, err := helper.EditColumn(table.Columns, existingName, displayName, columnType, required, isPrimaryKey)
	if err != nil {
		return err
	}

	return m.submitColumns(ctx, columns)
}

// DeleteColumn removes the column; when the primary key goes, the first
// remaining column is promoted. Stored records keep whatever keys they
// already have.
func (m *TableManager) DeleteColumn(ctx context.Context, name string) error {
	m.mu.Lock()
	table := m.table
	m.mu.Unlock()
	if table == nil {
		return models.NewValidationError("table is not loaded")
	}

	columns, err := helper.DeleteColumn(table.Columns, name)
	if err != nil {
		return err
	}

	return m.submitColumns(ctx, columns)
}

func (m *TableManager) submitColumns(ctx context.Context, columns []models.Column) error {
	updated, err := m.client.UpdateTable(ctx, m.tableId, &models.UpdateTableRequest{Columns: &columns})
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.table = updated
	m.mu.Unlock()
	return nil
}

// AddRecord fills every missing column with an empty string, inserts a
// batch of one and reloads the rows so ids and timestamps come from the
// server.
func (m *TableManager) AddRecord(ctx context.Context, values map[string]any) error {
	m.mu.Lock()
	table := m.table
	m.mu.Unlock()
	if table == nil {
		return models.NewValidationError("table is not loaded")
	}

	data := helper.ApplyColumnDefaults(table.Columns, values)

	if err := m.client.InsertRecords(ctx, m.tableId, []map[string]any{data}); err != nil {
		return err
	}

	return m.reloadRecords(ctx)
}

// EditRecord replaces the row's data wholesale. A second edit on the
// same row while one is still saving is rejected.
func (m *TableManager) EditRecord(ctx context.Context, recordId string, data map[string]any) error {
	m.mu.Lock()
	if m.saving[recordId] {
		m.mu.Unlock()
		return models.NewValidationError("record save already in progress")
	}
	m.saving[recordId] = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.saving, recordId)
		m.mu.Unlock()
	}()

	if err := m.client.UpdateRecord(ctx, recordId, data); err != nil {
		return err
	}

	m.mu.Lock()
	for i := range m.records {
		if m.records[i].Id == recordId {
			m.records[i].Data = data
			break
		}
	}
	m.mu.Unlock()
	return nil
}

func (m *TableManager) DeleteRecord(ctx context.Context, recordId string) error {
	if err := m.client.DeleteRecord(ctx, recordId); err != nil {
		return err
	}

	m.mu.Lock()
	for i := range m.records {
		if m.records[i].Id == recordId {
			m.records = append(m.records[:i], m.records[i+1:]...)
			break
		}
	}
	m.mu.Unlock()
	return nil
}

func (m *TableManager) reloadRecords(ctx context.Context) error {
	records, err := m.client.GetRecords(ctx, m.tableId)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.records = records
	m.mu.Unlock()
	return nil
}
