package helper

import (
	"regexp"
	"strings"

	"claritel/claritel_go_admin_service/config"
	"claritel/claritel_go_admin_service/models"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	invalidRe    = regexp.MustCompile(`[^a-z0-9_]`)
)

// DeriveColumnName turns a display label into the wire-level column name:
// lowercased, whitespace runs collapsed to a single underscore, everything
// outside [a-z0-9_] stripped. The derivation is idempotent.
func DeriveColumnName(displayName string) string {
	name := strings.ToLower(strings.TrimSpace(displayName))
	name = whitespaceRe.ReplaceAllString(name, "_")
	name = invalidRe.ReplaceAllString(name, "")

	return name
}

func findColumn(columns []models.Column, name string) int {
	for i := range columns {
		if columns[i].Name == name {
			return i
		}
	}

	return -1
}

func primaryKeyIndex(columns []models.Column) int {
	for i := range columns {
		if columns[i].IsPrimaryKey {
			return i
		}
	}

	return -1
}

// AddColumn appends a column derived from displayName to the set and returns
// the new set. The input slice is not modified. The first column of an empty
// table is always primary, whatever the caller asked for; a second primary
// key is rejected.
func AddColumn(columns []models.Column, displayName, columnType string, required, isPrimaryKey bool) ([]models.Column, error) {
	if strings.TrimSpace(displayName) == "" {
		return nil, models.NewValidationError("display name is required")
	}

	if !config.ColumnTypes[columnType] {
		return nil, models.NewValidationError("unknown column type: " + columnType)
	}

	name := DeriveColumnName(displayName)
	if name == "" {
		return nil, models.NewValidationError("display name produces an empty column name")
	}

	if findColumn(columns, name) >= 0 {
		return nil, models.NewValidationError("column already exists: " + name)
	}

	if len(columns) == 0 {
		isPrimaryKey = true
	} else if isPrimaryKey && primaryKeyIndex(columns) >= 0 {
		return nil, models.NewValidationError("table already has a primary key column")
	}

	next := make([]models.Column, len(columns), len(columns)+1)
	copy(next, columns)

	return append(next, models.Column{
		Name:         name,
		DisplayName:  strings.TrimSpace(displayName),
		Type:         columnType,
		Required:     required,
		IsPrimaryKey: isPrimaryKey,
	}), nil
}

// EditColumn replaces the column currently named existingName. The name is
// re-derived from the new display label and must not collide with a
// different column. Edits that would leave the table with zero or two
// primary keys are rejected.
func EditColumn(columns []models.Column, existingName, displayName, columnType string, required, isPrimaryKey bool) ([]models.Column, error) {
	idx := findColumn(columns, existingName)
	if idx < 0 {
		return nil, models.NewValidationError("unknown column: " + existingName)
	}

	if strings.TrimSpace(displayName) == "" {
		return nil, models.NewValidationError("display name is required")
	}

	if !config.ColumnTypes[columnType] {
		return nil, models.NewValidationError("unknown column type: " + columnType)
	}

	name := DeriveColumnName(displayName)
	if name == "" {
		return nil, models.NewValidationError("display name produces an empty column name")
	}

	if other := findColumn(columns, name); other >= 0 && other != idx {
		return nil, models.NewValidationError("column already exists: " + name)
	}

	if pk := primaryKeyIndex(columns); isPrimaryKey && pk >= 0 && pk != idx {
		return nil, models.NewValidationError("table already has a primary key column")
	} else if !isPrimaryKey && pk == idx {
		return nil, models.NewValidationError("a non-empty table must keep a primary key column")
	}

	next := make([]models.Column, len(columns))
	copy(next, columns)

	next[idx] = models.Column{
		Name:         name,
		DisplayName:  strings.TrimSpace(displayName),
		Type:         columnType,
		Required:     required,
		IsPrimaryKey: isPrimaryKey,
	}

	return next, nil
}

// DeleteColumn removes the named column. When the primary key column is
// removed and columns remain, the first remaining column is promoted so the
// invariant survives the delete.
func DeleteColumn(columns []models.Column, name string) ([]models.Column, error) {
	idx := findColumn(columns, name)
	if idx < 0 {
		return nil, models.NewValidationError("unknown column: " + name)
	}

	wasPrimary := columns[idx].IsPrimaryKey

	next := make([]models.Column, 0, len(columns)-1)
	next = append(next, columns[:idx]...)
	next = append(next, columns[idx+1:]...)

	if wasPrimary && len(next) > 0 {
		next[0].IsPrimaryKey = true
	}

	return next, nil
}

// NormalizeColumnSet validates a whole submitted column set and fills in the
// derivable parts. Names missing from the payload are derived from display
// labels; a non-empty set without a primary key gets its first column
// promoted. Duplicate or malformed names and double primaries are rejected.
func NormalizeColumnSet(columns []models.Column) ([]models.Column, error) {
	next := make([]models.Column, len(columns))
	copy(next, columns)

	seen := make(map[string]bool, len(next))
	primaries := 0

	for i := range next {
		if strings.TrimSpace(next[i].DisplayName) == "" {
			return nil, models.NewValidationError("display name is required")
		}

		next[i].DisplayName = strings.TrimSpace(next[i].DisplayName)

		if next[i].Name == "" {
			next[i].Name = DeriveColumnName(next[i].DisplayName)
		}

		if next[i].Name == "" || invalidRe.MatchString(next[i].Name) {
			return nil, models.NewValidationError("invalid column name: " + next[i].Name)
		}

		if !config.ColumnTypes[next[i].Type] {
			return nil, models.NewValidationError("unknown column type: " + next[i].Type)
		}

		if seen[next[i].Name] {
			return nil, models.NewValidationError("duplicate column name: " + next[i].Name)
		}
		seen[next[i].Name] = true

		if next[i].IsPrimaryKey {
			primaries++
		}
	}

	if primaries > 1 {
		return nil, models.NewValidationError("at most one column may be the primary key")
	}

	if primaries == 0 && len(next) > 0 {
		next[0].IsPrimaryKey = true
	}

	return next, nil
}
