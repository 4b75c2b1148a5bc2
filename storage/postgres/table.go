package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"claritel/claritel_go_admin_service/models"
	"claritel/claritel_go_admin_service/pkg/helper"
	psqlpool "claritel/claritel_go_admin_service/pool"
	"claritel/claritel_go_admin_service/storage"
)

type tableRepo struct {
	db *psqlpool.Pool
}

func NewTableRepo(db *psqlpool.Pool) storage.TableRepoI {
	return &tableRepo{
		db: db,
	}
}

func insertTable(ctx context.Context, tx pgx.Tx, assistantId string, req *models.CreateTableRequest) (string, error) {
	columns, err := helper.NormalizeColumnSet(req.Columns)
	if err != nil {
		return "", err
	}

	name := req.Name
	if name == "" {
		name = helper.DeriveColumnName(req.DisplayName)
	}
	if name == "" {
		return "", models.NewValidationError("table display name is required")
	}

	columnsJson, err := json.Marshal(columns)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal columns")
	}

	var tableId = uuid.NewString()

	query := `INSERT INTO "data_table" (id, assistant_id, "name", display_name, description, "columns")
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = tx.Exec(ctx, query,
		tableId, assistantId, name, req.DisplayName, req.Description, columnsJson,
	)
	if err != nil {
		return "", errors.Wrap(err, "failed to insert table")
	}

	return tableId, nil
}

func (t *tableRepo) Create(ctx context.Context, assistantId string, req *models.CreateTableRequest) (resp *models.TableDefinition, err error) {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "table.Create")
	defer dbSpan.Finish()

	tx, err := t.db.Begin(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	tableId, err := insertTable(ctx, tx, assistantId, req)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to commit transaction")
	}

	return t.GetByID(ctx, tableId)
}

// CreateGroup creates several table definitions for one assistant in a
// single transaction, as the assistant-creation wizard submits them.
func (t *tableRepo) CreateGroup(ctx context.Context, assistantId string, reqs []models.CreateTableRequest) (resp []models.TableDefinition, err error) {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "table.CreateGroup")
	defer dbSpan.Finish()

	tx, err := t.db.Begin(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	ids := make([]string, 0, len(reqs))

	for i := range reqs {
		tableId, err := insertTable(ctx, tx, assistantId, &reqs[i])
		if err != nil {
			return nil, err
		}

		ids = append(ids, tableId)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to commit transaction")
	}

	resp = make([]models.TableDefinition, 0, len(ids))

	for _, id := range ids {
		table, err := t.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		resp = append(resp, *table)
	}

	return resp, nil
}

const tableColumns = `id, assistant_id, "name", display_name, description, "columns", created_at, updated_at`

func scanTable(row interface{ Scan(...any) error }) (*models.TableDefinition, error) {
	var (
		table       models.TableDefinition
		columnsJson []byte
	)

	err := row.Scan(
		&table.Id,
		&table.AssistantId,
		&table.Name,
		&table.DisplayName,
		&table.Description,
		&columnsJson,
		&table.CreatedAt,
		&table.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	table.Columns = []models.Column{}
	if err := json.Unmarshal(columnsJson, &table.Columns); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal columns")
	}

	return &table, nil
}

func (t *tableRepo) GetByID(ctx context.Context, id string) (*models.TableDefinition, error) {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "table.GetByID")
	defer dbSpan.Finish()

	query := fmt.Sprintf(`SELECT %s FROM "data_table" WHERE id = $1`, tableColumns)

	table, err := scanTable(t.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get table")
	}

	return table, nil
}

func (t *tableRepo) GetAllByAssistant(ctx context.Context, assistantId string) ([]models.TableDefinition, error) {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "table.GetAllByAssistant")
	defer dbSpan.Finish()

	query := fmt.Sprintf(`SELECT %s FROM "data_table" WHERE assistant_id = $1 ORDER BY created_at`, tableColumns)

	rows, err := t.db.Query(ctx, query, assistantId)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select tables")
	}
	defer rows.Close()

	tables := []models.TableDefinition{}

	for rows.Next() {
		table, err := scanTable(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan table")
		}

		tables = append(tables, *table)
	}

	return tables, nil
}

// Update replaces table metadata and, when Columns is present, the whole
// column set. There is no column-level patch: the submitted set is the new
// truth after validation.
func (t *tableRepo) Update(ctx context.Context, id string, req *models.UpdateTableRequest) (*models.TableDefinition, error) {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "table.Update")
	defer dbSpan.Finish()

	query := `UPDATE "data_table" SET
		display_name = COALESCE($2, display_name),
		description = COALESCE($3, description),
		"columns" = COALESCE($4, "columns"),
		updated_at = CURRENT_TIMESTAMP
	WHERE id = $1`

	var columnsJson []byte

	if req.Columns != nil {
		columns, err := helper.NormalizeColumnSet(*req.Columns)
		if err != nil {
			return nil, err
		}

		columnsJson, err = json.Marshal(columns)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal columns")
		}
	}

	tag, err := t.db.Exec(ctx, query, id, req.DisplayName, req.Description, columnsJson)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update table")
	}

	if tag.RowsAffected() == 0 {
		return nil, errors.Wrap(errNoRows(), fmt.Sprintf("table %s", id))
	}

	return t.GetByID(ctx, id)
}

// Delete removes the table definition; its record store goes with it via
// the foreign key cascade.
func (t *tableRepo) Delete(ctx context.Context, id string) error {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "table.Delete")
	defer dbSpan.Finish()

	query := `DELETE FROM "data_table" WHERE id = $1`

	tag, err := t.db.Exec(ctx, query, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete table")
	}

	if tag.RowsAffected() == 0 {
		return errors.Wrap(errNoRows(), fmt.Sprintf("table %s", id))
	}

	return nil
}
