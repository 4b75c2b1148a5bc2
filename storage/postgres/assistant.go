package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"claritel/claritel_go_admin_service/models"
	psqlpool "claritel/claritel_go_admin_service/pool"
	"claritel/claritel_go_admin_service/storage"
)

type assistantRepo struct {
	db *psqlpool.Pool
}

func NewAssistantRepo(db *psqlpool.Pool) storage.AssistantRepoI {
	return &assistantRepo{
		db: db,
	}
}

const assistantColumns = `id, COALESCE(company_id::text, '') AS company_id, "name", description, agent_description,
	"language", specialization, call_preference, website_url, default_phone,
	is_active, created_at, updated_at`

func scanAssistant(row interface{ Scan(...any) error }) (*models.Assistant, error) {
	var a models.Assistant

	err := row.Scan(
		&a.Id,
		&a.CompanyId,
		&a.Name,
		&a.Description,
		&a.AgentDescription,
		&a.Language,
		&a.Specialization,
		&a.CallPreference,
		&a.WebsiteUrl,
		&a.DefaultPhone,
		&a.IsActive,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (a *assistantRepo) Create(ctx context.Context, req *models.CreateAssistantRequest) (*models.Assistant, error) {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "assistant.Create")
	defer dbSpan.Finish()

	var id = uuid.NewString()

	query := `INSERT INTO "assistant" (
		id, company_id, "name", description, agent_description,
		"language", specialization, call_preference, website_url,
		default_phone, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	var companyId any
	if req.CompanyId != "" {
		companyId = req.CompanyId
	}

	_, err := a.db.Exec(ctx, query,
		id, companyId, req.Name, req.Description, req.AgentDescription,
		req.Language, req.Specialization, req.CallPreference, req.WebsiteUrl,
		req.DefaultPhone, req.IsActive,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert assistant")
	}

	return a.GetByID(ctx, id)
}

func (a *assistantRepo) GetByID(ctx context.Context, id string) (*models.Assistant, error) {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "assistant.GetByID")
	defer dbSpan.Finish()

	query := fmt.Sprintf(`SELECT %s FROM "assistant" WHERE id = $1`, assistantColumns)

	assistant, err := scanAssistant(a.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get assistant")
	}

	return assistant, nil
}

func (a *assistantRepo) GetAll(ctx context.Context, req *models.GetAllAssistantsRequest) (*models.GetAllAssistantsResponse, error) {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "assistant.GetAll")
	defer dbSpan.Finish()

	var resp = models.GetAllAssistantsResponse{
		Assistants: []models.Assistant{},
	}

	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	builder := sb.Select(assistantColumns).
		From(`"assistant"`).
		OrderBy("created_at DESC")

	countBuilder := sb.Select("COUNT(*)").From(`"assistant"`)

	if req.CompanyId != "" {
		eq := squirrel.Eq{"company_id": req.CompanyId}
		builder = builder.Where(eq)
		countBuilder = countBuilder.Where(eq)
	}

	if req.Search != "" {
		like := squirrel.Or{
			squirrel.ILike{`"name"`: "%" + req.Search + "%"},
			squirrel.ILike{"description": "%" + req.Search + "%"},
		}
		builder = builder.Where(like)
		countBuilder = countBuilder.Where(like)
	}

	if req.Limit > 0 {
		builder = builder.Limit(uint64(req.Limit)).Offset(uint64(req.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows, err := a.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select assistants")
	}
	defer rows.Close()

	for rows.Next() {
		assistant, err := scanAssistant(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan assistant")
		}

		resp.Assistants = append(resp.Assistants, *assistant)
	}

	query, args, err = countBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build count query")
	}

	err = a.db.QueryRow(ctx, query, args...).Scan(&resp.Count)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count assistants")
	}

	return &resp, nil
}

func (a *assistantRepo) Update(ctx context.Context, id string, req *models.UpdateAssistantRequest) (*models.Assistant, error) {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "assistant.Update")
	defer dbSpan.Finish()

	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	builder := sb.Update(`"assistant"`).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id})

	if req.Name != nil {
		builder = builder.Set(`"name"`, *req.Name)
	}
	if req.Description != nil {
		builder = builder.Set("description", *req.Description)
	}
	if req.AgentDescription != nil {
		builder = builder.Set("agent_description", *req.AgentDescription)
	}
	if req.Language != nil {
		builder = builder.Set(`"language"`, *req.Language)
	}
	if req.Specialization != nil {
		builder = builder.Set("specialization", *req.Specialization)
	}
	if req.CallPreference != nil {
		builder = builder.Set("call_preference", *req.CallPreference)
	}
	if req.WebsiteUrl != nil {
		builder = builder.Set("website_url", *req.WebsiteUrl)
	}
	if req.DefaultPhone != nil {
		builder = builder.Set("default_phone", *req.DefaultPhone)
	}
	if req.IsActive != nil {
		builder = builder.Set("is_active", *req.IsActive)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build update query")
	}

	tag, err := a.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update assistant")
	}

	if tag.RowsAffected() == 0 {
		return nil, errors.Wrap(errNoRows(), fmt.Sprintf("assistant %s", id))
	}

	return a.GetByID(ctx, id)
}

func (a *assistantRepo) Delete(ctx context.Context, id string) error {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "assistant.Delete")
	defer dbSpan.Finish()

	query := `DELETE FROM "assistant" WHERE id = $1`

	tag, err := a.db.Exec(ctx, query, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete assistant")
	}

	if tag.RowsAffected() == 0 {
		return errors.Wrap(errNoRows(), fmt.Sprintf("assistant %s", id))
	}

	return nil
}
