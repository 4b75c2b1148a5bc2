package client

import (
	"context"
	"net/http"

	"claritel/claritel_go_admin_service/models"
)

func (c *Client) GetAssistantTables(ctx context.Context, assistantId string) ([]models.TableDefinition, error) {
	var out []models.TableDefinition
	if err := c.do(ctx, http.MethodGet, "/api/assistants/"+assistantId+"/tables", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTable(ctx context.Context, assistantId string, req *models.CreateTableRequest) (*models.TableDefinition, error) {
	var out models.TableDefinition
	if err := c.do(ctx, http.MethodPost, "/api/assistants/"+assistantId+"/tables", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTableGroup(ctx context.Context, assistantId string, reqs []models.CreateTableRequest) ([]models.TableDefinition, error) {
	var out []models.TableDefinition
	if err := c.do(ctx, http.MethodPost, "/api/assistants/"+assistantId+"/tables/group", reqs, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTable(ctx context.Context, tableId string) (*models.TableDefinition, error) {
	var out models.TableDefinition
	if err := c.do(ctx, http.MethodGet, "/api/tables/"+tableId, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTable(ctx context.Context, tableId string, req *models.UpdateTableRequest) (*models.TableDefinition, error) {
	var out models.TableDefinition
	if err := c.do(ctx, http.MethodPut, "/api/tables/"+tableId, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTable(ctx context.Context, tableId string) error {
	return c.do(ctx, http.MethodDelete, "/api/tables/"+tableId, nil, nil)
}
