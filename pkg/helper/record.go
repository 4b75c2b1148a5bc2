package helper

import "claritel/claritel_go_admin_service/models"

// ApplyColumnDefaults returns a record payload containing every column name
// as a key. Fields missing from the caller's values default to an empty
// string so the insert contract never sees an undefined field. Extra keys
// the caller supplied are passed through untouched.
func ApplyColumnDefaults(columns []models.Column, values map[string]any) map[string]any {
	data := make(map[string]any, len(columns)+len(values))

	for k, v := range values {
		data[k] = v
	}

	for _, col := range columns {
		if _, ok := data[col.Name]; !ok {
			data[col.Name] = ""
		}
	}

	return data
}
