package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"claritel/claritel_go_admin_service/models"
	psqlpool "claritel/claritel_go_admin_service/pool"
	"claritel/claritel_go_admin_service/storage"
)

// recordRepo stores records as opaque jsonb documents keyed by table id.
// Data is deliberately not checked against the owning table's column set:
// schema edits never migrate or purge what is already stored.
type recordRepo struct {
	db *psqlpool.Pool
}

func NewRecordRepo(db *psqlpool.Pool) storage.RecordRepoI {
	return &recordRepo{
		db: db,
	}
}

func (r *recordRepo) GetAll(ctx context.Context, tableId string) ([]models.Record, error) {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "record.GetAll")
	defer dbSpan.Finish()

	query := `SELECT id, table_id, "data", created_at, updated_at
		FROM "record" WHERE table_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, tableId)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select records")
	}
	defer rows.Close()

	records := []models.Record{}

	for rows.Next() {
		var (
			record   models.Record
			dataJson []byte
		)

		err = rows.Scan(
			&record.Id,
			&record.TableId,
			&dataJson,
			&record.CreatedAt,
			&record.UpdatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan record")
		}

		record.Data = map[string]any{}
		if err := json.Unmarshal(dataJson, &record.Data); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal record data")
		}

		records = append(records, record)
	}

	return records, nil
}

// Insert writes a batch of records in one transaction; a failing row rolls
// back the whole batch.
func (r *recordRepo) Insert(ctx context.Context, tableId string, records []map[string]any) (err error) {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "record.Insert")
	defer dbSpan.Finish()

	if len(records) == 0 {
		return models.NewValidationError("no records to insert")
	}

	// the table must exist; the record table itself has no knowledge of
	// column sets
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM "data_table" WHERE id = $1)`

	err = r.db.QueryRow(ctx, query, tableId).Scan(&exists)
	if err != nil {
		return errors.Wrap(err, "failed to check table")
	}

	if !exists {
		return errors.Wrap(errNoRows(), fmt.Sprintf("table %s", tableId))
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	query = `INSERT INTO "record" (id, table_id, "data") VALUES ($1, $2, $3)`

	for _, data := range records {
		dataJson, err := json.Marshal(data)
		if err != nil {
			return errors.Wrap(err, "failed to marshal record data")
		}

		_, err = tx.Exec(ctx, query, uuid.NewString(), tableId, dataJson)
		if err != nil {
			return errors.Wrap(err, "failed to insert record")
		}
	}

	return errors.Wrap(tx.Commit(ctx), "failed to commit transaction")
}

// Update replaces the record's entire data document; there is no
// field-level merge.
func (r *recordRepo) Update(ctx context.Context, recordId string, data map[string]any) error {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "record.Update")
	defer dbSpan.Finish()

	dataJson, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to marshal record data")
	}

	query := `UPDATE "record" SET "data" = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, recordId, dataJson)
	if err != nil {
		return errors.Wrap(err, "failed to update record")
	}

	if tag.RowsAffected() == 0 {
		return errors.Wrap(errNoRows(), fmt.Sprintf("record %s", recordId))
	}

	return nil
}

func (r *recordRepo) Delete(ctx context.Context, recordId string) error {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "record.Delete")
	defer dbSpan.Finish()

	query := `DELETE FROM "record" WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, recordId)
	if err != nil {
		return errors.Wrap(err, "failed to delete record")
	}

	if tag.RowsAffected() == 0 {
		return errors.Wrap(errNoRows(), fmt.Sprintf("record %s", recordId))
	}

	return nil
}
