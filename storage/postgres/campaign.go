package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"claritel/claritel_go_admin_service/config"
	"claritel/claritel_go_admin_service/models"
	psqlpool "claritel/claritel_go_admin_service/pool"
	"claritel/claritel_go_admin_service/storage"
)

type campaignRepo struct {
	db *psqlpool.Pool
}

func NewCampaignRepo(db *psqlpool.Pool) storage.CampaignRepoI {
	return &campaignRepo{
		db: db,
	}
}

func (c *campaignRepo) Create(ctx context.Context, req *models.CreateCampaignRequest) (resp *models.Campaign, err error) {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "campaign.Create")
	defer dbSpan.Finish()

	if len(req.Contacts) == 0 {
		return nil, models.NewValidationError("campaign has no contacts")
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var campaignId = uuid.NewString()

	query := `INSERT INTO "campaign" (id, assistant_id, "name", status, scheduled_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = tx.Exec(ctx, query,
		campaignId, req.AssistantId, req.Name, config.CampaignStatusScheduled, req.ScheduledAt,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert campaign")
	}

	query = `INSERT INTO "campaign_contact" (
		id, campaign_id, phone, "name", gender, "date", product_name, service_number
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	for _, contact := range req.Contacts {
		_, err = tx.Exec(ctx, query,
			uuid.NewString(), campaignId, contact.Phone, contact.Name,
			contact.Gender, contact.Date, contact.ProductName, contact.ServiceNumber,
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to insert contact")
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to commit transaction")
	}

	return c.GetByID(ctx, campaignId)
}

const campaignColumns = `id, assistant_id, "name", status, scheduled_at, created_at, updated_at`

func scanCampaign(row interface{ Scan(...any) error }) (*models.Campaign, error) {
	var campaign models.Campaign

	err := row.Scan(
		&campaign.Id,
		&campaign.AssistantId,
		&campaign.Name,
		&campaign.Status,
		&campaign.ScheduledAt,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	campaign.Contacts = []models.Contact{}

	return &campaign, nil
}

func (c *campaignRepo) loadContacts(ctx context.Context, campaigns []models.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}

	index := make(map[string]int, len(campaigns))
	ids := make([]string, 0, len(campaigns))

	for i := range campaigns {
		index[campaigns[i].Id] = i
		ids = append(ids, campaigns[i].Id)
	}

	query := `SELECT campaign_id, phone, "name", gender, "date", product_name, service_number
		FROM "campaign_contact" WHERE campaign_id = ANY ($1) ORDER BY id`

	rows, err := c.db.Query(ctx, query, pq.Array(ids))
	if err != nil {
		return errors.Wrap(err, "failed to select contacts")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			campaignId string
			contact    models.Contact
		)

		err = rows.Scan(
			&campaignId,
			&contact.Phone,
			&contact.Name,
			&contact.Gender,
			&contact.Date,
			&contact.ProductName,
			&contact.ServiceNumber,
		)
		if err != nil {
			return errors.Wrap(err, "failed to scan contact")
		}

		i := index[campaignId]
		campaigns[i].Contacts = append(campaigns[i].Contacts, contact)
	}

	return nil
}

func (c *campaignRepo) GetByID(ctx context.Context, id string) (*models.Campaign, error) {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "campaign.GetByID")
	defer dbSpan.Finish()

	query := fmt.Sprintf(`SELECT %s FROM "campaign" WHERE id = $1`, campaignColumns)

	campaign, err := scanCampaign(c.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get campaign")
	}

	campaigns := []models.Campaign{*campaign}
	if err := c.loadContacts(ctx, campaigns); err != nil {
		return nil, err
	}

	return &campaigns[0], nil
}

func (c *campaignRepo) GetAll(ctx context.Context, req *models.GetAllCampaignsRequest) (*models.GetAllCampaignsResponse, error) {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "campaign.GetAll")
	defer dbSpan.Finish()

	var resp = models.GetAllCampaignsResponse{
		Campaigns: []models.Campaign{},
	}

	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	builder := sb.Select(campaignColumns).
		From(`"campaign"`).
		OrderBy("created_at DESC")

	countBuilder := sb.Select("COUNT(*)").From(`"campaign"`)

	if req.AssistantId != "" {
		eq := squirrel.Eq{"assistant_id": req.AssistantId}
		builder = builder.Where(eq)
		countBuilder = countBuilder.Where(eq)
	}

	if req.Status != "" {
		eq := squirrel.Eq{"status": req.Status}
		builder = builder.Where(eq)
		countBuilder = countBuilder.Where(eq)
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
		return nil, errors.Wrap(err, "failed to select campaigns")
	}
	defer rows.Close()

	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan campaign")
		}

		resp.Campaigns = append(resp.Campaigns, *campaign)
	}

	if err := c.loadContacts(ctx, resp.Campaigns); err != nil {
		return nil, err
	}

	query, args, err = countBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build count query")
	}

	err = c.db.QueryRow(ctx, query, args...).Scan(&resp.Count)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count campaigns")
	}

	return &resp, nil
}

// GetDue returns scheduled campaigns whose start time has passed; a
// campaign without a schedule is due immediately.
func (c *campaignRepo) GetDue(ctx context.Context) ([]models.Campaign, error) {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "campaign.GetDue")
	defer dbSpan.Finish()

	query := fmt.Sprintf(`SELECT %s FROM "campaign"
		WHERE status = $1 AND (scheduled_at IS NULL OR scheduled_at <= CURRENT_TIMESTAMP)
		ORDER BY created_at`, campaignColumns)

	rows, err := c.db.Query(ctx, query, config.CampaignStatusScheduled)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select due campaigns")
	}
	defer rows.Close()

	campaigns := []models.Campaign{}

	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan campaign")
		}

		campaigns = append(campaigns, *campaign)
	}

	if err := c.loadContacts(ctx, campaigns); err != nil {
		return nil, err
	}

	return campaigns, nil
}

func (c *campaignRepo) SetStatus(ctx context.Context, id, status string) error {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, "campaign.SetStatus")
	defer dbSpan.Finish()

	query := `UPDATE "campaign" SET status = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $1`

	tag, err := c.db.Exec(ctx, query, id, status)
	if err != nil {
		return errors.Wrap(err, "failed to update campaign status")
	}

	if tag.RowsAffected() == 0 {
		return errors.Wrap(errNoRows(), fmt.Sprintf("campaign %s", id))
	}

	return nil
}
