// Package contacts parses campaign contact sheets. The dashboard offers a
// sample CSV with the header below; uploads are parsed with encoding/csv so
// quoted fields and embedded commas survive.
package contacts

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"

	"claritel/claritel_go_admin_service/models"
)

var headerFields = map[string]bool{
	"phone":          true,
	"name":           true,
	"gender":         true,
	"date":           true,
	"product_name":   true,
	"service_number": true,
}

// Parse reads a contact CSV. The first row must be a header naming at least
// the phone column; unknown columns are ignored, rows without a phone are
// skipped.
func Parse(r io.Reader) ([]models.Contact, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("contact file is empty")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read header")
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		if headerFields[h] {
			index[h] = i
		}
	}

	if _, ok := index["phone"]; !ok {
		return nil, errors.New("contact file has no phone column")
	}

	var list []models.Contact

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read row")
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		contact := models.Contact{
			Phone:         field("phone"),
			Name:          field("name"),
			Gender:        field("gender"),
			Date:          field("date"),
			ProductName:   field("product_name"),
			ServiceNumber: field("service_number"),
		}

		if contact.Phone == "" {
			continue
		}

		list = append(list, contact)
	}

	if len(list) == 0 {
		return nil, errors.New("contact file has no rows with a phone number")
	}

	return list, nil
}
