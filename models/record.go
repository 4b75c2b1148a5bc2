package models

import "time"

// Record is one loosely-typed document stored against a table definition.
// Data is never validated against the live column set: schema edits do not
// migrate or purge record fields.
type Record struct {
	Id        string         `json:"id"`
	TableId   string         `json:"table_id"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// InsertRecordsRequest is a batch insert; single-record creates go through
// the same contract as a batch of one.
type InsertRecordsRequest struct {
	Records []map[string]any `json:"records"`
}

type UpdateRecordRequest struct {
	Data map[string]any `json:"data"`
}
