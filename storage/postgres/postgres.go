package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"claritel/claritel_go_admin_service/config"
	psqlpool "claritel/claritel_go_admin_service/pool"
	"claritel/claritel_go_admin_service/storage"
)

type Store struct {
	db        *psqlpool.Pool
	company   storage.CompanyRepoI
	assistant storage.AssistantRepoI
	table     storage.TableRepoI
	record    storage.RecordRepoI
	campaign  storage.CampaignRepoI
	apiToken  storage.ApiTokenRepoI
}

func NewPostgres(ctx context.Context, cfg config.Config) (storage.StorageI, error) {
	pgConfig, err := pgxpool.ParseConfig(fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.PostgresHost,
		cfg.PostgresPort,
		cfg.PostgresDatabase,
	))
	if err != nil {
		return nil, err
	}

	pgConfig.MaxConns = cfg.PostgresMaxConnections

	pool, err := pgxpool.NewWithConfig(ctx, pgConfig)
	if err != nil {
		return nil, err
	}

	err = pool.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return &Store{
		db: &psqlpool.Pool{Db: pool},
	}, nil
}

func (s *Store) CloseDB() {
	s.db.Close()
}

func (s *Store) Company() storage.CompanyRepoI {
	if s.company == nil {
		s.company = NewCompanyRepo(s.db)
	}

	return s.company
}

func (s *Store) Assistant() storage.AssistantRepoI {
	if s.assistant == nil {
		s.assistant = NewAssistantRepo(s.db)
	}

	return s.assistant
}

func (s *Store) Table() storage.TableRepoI {
	if s.table == nil {
		s.table = NewTableRepo(s.db)
	}

	return s.table
}

func (s *Store) Record() storage.RecordRepoI {
	if s.record == nil {
		s.record = NewRecordRepo(s.db)
	}

	return s.record
}

func (s *Store) Campaign() storage.CampaignRepoI {
	if s.campaign == nil {
		s.campaign = NewCampaignRepo(s.db)
	}

	return s.campaign
}

func (s *Store) ApiToken() storage.ApiTokenRepoI {
	if s.apiToken == nil {
		s.apiToken = NewApiTokenRepo(s.db)
	}

	return s.apiToken
}
