package client

import (
	"context"
	"net/http"

	"claritel/claritel_go_admin_service/models"
)

func (c *Client) GetRecords(ctx context.Context, tableId string) ([]models.Record, error) {
	var out []models.Record
	if err := c.do(ctx, http.MethodGet, "/api/tables/"+tableId+"/records", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) InsertRecords(ctx context.Context, tableId string, records []map[string]any) error {
	return c.do(ctx, http.MethodPost, "/api/tables/"+tableId+"/records", &models.InsertRecordsRequest{Records: records}, nil)
}

func (c *Client) UpdateRecord(ctx context.Context, recordId string, data map[string]any) error {
	return c.do(ctx, http.MethodPut, "/api/records/"+recordId, &models.UpdateRecordRequest{Data: data}, nil)
}

func (c *Client) DeleteRecord(ctx context.Context, recordId string) error {
	return c.do(ctx, http.MethodDelete, "/api/records/"+recordId, nil, nil)
}
