package models

import "time"

// Column describes one field of a dynamic table. Name is derived from
// DisplayName and is the wire-level key inside each record's data map.
type Column struct {
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	Type         string `json:"type"`
	Required     bool   `json:"required"`
	IsPrimaryKey bool   `json:"is_primary_key"`
}

// TableDefinition is an ordered column set owned by one assistant.
// Columns are mutated only by whole-set replacement.
type TableDefinition struct {
	Id          string    `json:"id"`
	AssistantId string    `json:"assistant_id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Description string    `json:"description"`
	Columns     []Column  `json:"columns"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateTableRequest struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Description string   `json:"description"`
	Columns     []Column `json:"columns"`
}

// UpdateTableRequest carries partial metadata updates; a non-nil Columns
// replaces the whole column set.
type UpdateTableRequest struct {
	DisplayName *string   `json:"display_name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Columns     *[]Column `json:"columns,omitempty"`
}
