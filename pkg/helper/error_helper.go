package helper

import (
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"claritel/claritel_go_admin_service/models"
)

// StatusFromError maps storage and validation failures onto the HTTP status
// and message the API returns. Unrecognized errors become a 500 with the
// error text so the frontend always has something to show.
func StatusFromError(err error) (int, string) {
	if err == nil {
		return http.StatusOK, ""
	}

	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity, validationErr.Message
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return http.StatusNotFound, "not found"
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			// unique violation
			return http.StatusConflict, pgErr.Message
		case "23503":
			// foreign key violation
			return http.StatusUnprocessableEntity, "foreign key violation: " + pgErr.Message
		case "23502":
			// not null violation
			return http.StatusUnprocessableEntity, "not null violation: " + pgErr.Message
		case "08006":
			// connection failure
			return http.StatusServiceUnavailable, "connection failure: " + pgErr.Message
		case "40P01":
			// deadlock detected
			return http.StatusConflict, "deadlock detected: " + pgErr.Message
		}
	}

	return http.StatusInternalServerError, err.Error()
}
