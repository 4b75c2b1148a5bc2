package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"claritel/claritel_go_admin_service/models"
	psqlpool "claritel/claritel_go_admin_service/pool"
	"claritel/claritel_go_admin_service/storage"
)

type apiTokenRepo struct {
	db *psqlpool.Pool
}

func NewApiTokenRepo(db *psqlpool.Pool) storage.ApiTokenRepoI {
	return &apiTokenRepo{
		db: db,
	}
}

func (t *apiTokenRepo) Create(ctx context.Context, label, secretHash string) (*models.ApiToken, error) {
	var id = uuid.NewString()

	query := `INSERT INTO "api_token" (id, label, secret_hash) VALUES ($1, $2, $3)`

	_, err := t.db.Exec(ctx, query, id, label, secretHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert api token")
	}

	return t.GetByID(ctx, id)
}

func (t *apiTokenRepo) GetByID(ctx context.Context, id string) (*models.ApiToken, error) {
	var token models.ApiToken

	query := `SELECT id, label, secret_hash, created_at FROM "api_token" WHERE id = $1`

	err := t.db.QueryRow(ctx, query, id).Scan(
		&token.Id,
		&token.Label,
		&token.SecretHash,
		&token.CreatedAt,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get api token")
	}

	return &token, nil
}
