package postgres

import "github.com/jackc/pgx/v5"

// errNoRows lets zero-row updates and deletes surface as the same not-found
// error QueryRow-based paths produce.
func errNoRows() error {
	return pgx.ErrNoRows
}
