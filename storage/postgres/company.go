package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"claritel/claritel_go_admin_service/models"
	psqlpool "claritel/claritel_go_admin_service/pool"
	"claritel/claritel_go_admin_service/storage"
)

type companyRepo struct {
	db *psqlpool.Pool
}

func NewCompanyRepo(db *psqlpool.Pool) storage.CompanyRepoI {
	return &companyRepo{
		db: db,
	}
}

func (c *companyRepo) Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	var id = uuid.NewString()

	query := `INSERT INTO "company" (id, "name", email, phone, website_url)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := c.db.Exec(ctx, query,
		id, req.Name, req.Email, req.Phone, req.WebsiteUrl,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert company")
	}

	return c.GetByID(ctx, id)
}

func (c *companyRepo) GetByID(ctx context.Context, id string) (*models.Company, error) {
	var company models.Company

	query := `SELECT id, "name", email, phone, website_url, created_at, updated_at
		FROM "company" WHERE id = $1`

	err := c.db.QueryRow(ctx, query, id).Scan(
		&company.Id,
		&company.Name,
		&company.Email,
		&company.Phone,
		&company.WebsiteUrl,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get company")
	}

	return &company, nil
}

func (c *companyRepo) GetAll(ctx context.Context, req *models.GetAllCompaniesRequest) (*models.GetAllCompaniesResponse, error) {
	var resp = models.GetAllCompaniesResponse{
		Companies: []models.Company{},
	}

	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	builder := sb.Select("id", `"name"`, "email", "phone", "website_url", "created_at", "updated_at").
		From(`"company"`).
		OrderBy("created_at DESC")

	countBuilder := sb.Select("COUNT(*)").From(`"company"`)

	if req.Search != "" {
		like := squirrel.ILike{`"name"`: "%" + req.Search + "%"}
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

	rows, err := c.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select companies")
	}
	defer rows.Close()

	for rows.Next() {
		var company models.Company

		err = rows.Scan(
			&company.Id,
			&company.Name,
			&company.Email,
			&company.Phone,
			&company.WebsiteUrl,
			&company.CreatedAt,
			&company.UpdatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan company")
		}

		resp.Companies = append(resp.Companies, company)
	}

	query, args, err = countBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build count query")
	}

	err = c.db.QueryRow(ctx, query, args...).Scan(&resp.Count)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count companies")
	}

	return &resp, nil
}

func (c *companyRepo) Update(ctx context.Context, id string, req *models.UpdateCompanyRequest) (*models.Company, error) {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	builder := sb.Update(`"company"`).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id})

	if req.Name != nil {
		builder = builder.Set(`"name"`, *req.Name)
	}
	if req.Email != nil {
		builder = builder.Set("email", *req.Email)
	}
	if req.Phone != nil {
		builder = builder.Set("phone", *req.Phone)
	}
	if req.WebsiteUrl != nil {
		builder = builder.Set("website_url", *req.WebsiteUrl)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build update query")
	}

	tag, err := c.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update company")
	}

	if tag.RowsAffected() == 0 {
		return nil, errors.Wrap(errNoRows(), fmt.Sprintf("company %s", id))
	}

	return c.GetByID(ctx, id)
}

func (c *companyRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM "company" WHERE id = $1`

	tag, err := c.db.Exec(ctx, query, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete company")
	}

	if tag.RowsAffected() == 0 {
		return errors.Wrap(errNoRows(), fmt.Sprintf("company %s", id))
	}

	return nil
}
