package storage

import (
	"context"

	"claritel/claritel_go_admin_service/models"
)

type StorageI interface {
	CloseDB()
	Company() CompanyRepoI
	Assistant() AssistantRepoI
	Table() TableRepoI
	Record() RecordRepoI
	Campaign() CampaignRepoI
	ApiToken() ApiTokenRepoI
}

type CompanyRepoI interface {
	Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error)
	GetByID(ctx context.Context, id string) (*models.Company, error)
	GetAll(ctx context.Context, req *models.GetAllCompaniesRequest) (*models.GetAllCompaniesResponse, error)
	Update(ctx context.Context, id string, req *models.UpdateCompanyRequest) (*models.Company, error)
	Delete(ctx context.Context, id string) error
}

type AssistantRepoI interface {
	Create(ctx context.Context, req *models.CreateAssistantRequest) (*models.Assistant, error)
	GetByID(ctx context.Context, id string) (*models.Assistant, error)
	GetAll(ctx context.Context, req *models.GetAllAssistantsRequest) (*models.GetAllAssistantsResponse, error)
	Update(ctx context.Context, id string, req *models.UpdateAssistantRequest) (*models.Assistant, error)
	Delete(ctx context.Context, id string) error
}

type TableRepoI interface {
	Create(ctx context.Context, assistantId string, req *models.CreateTableRequest) (*models.TableDefinition, error)
	CreateGroup(ctx context.Context, assistantId string, reqs []models.CreateTableRequest) ([]models.TableDefinition, error)
	GetByID(ctx context.Context, id string) (*models.TableDefinition, error)
	GetAllByAssistant(ctx context.Context, assistantId string) ([]models.TableDefinition, error)
	Update(ctx context.Context, id string, req *models.UpdateTableRequest) (*models.TableDefinition, error)
	Delete(ctx context.Context, id string) error
}

type RecordRepoI interface {
	GetAll(ctx context.Context, tableId string) ([]models.Record, error)
	Insert(ctx context.Context, tableId string, records []map[string]any) error
	Update(ctx context.Context, recordId string, data map[string]any) error
	Delete(ctx context.Context, recordId string) error
}

type CampaignRepoI interface {
	Create(ctx context.Context, req *models.CreateCampaignRequest) (*models.Campaign, error)
	GetByID(ctx context.Context, id string) (*models.Campaign, error)
	GetAll(ctx context.Context, req *models.GetAllCampaignsRequest) (*models.GetAllCampaignsResponse, error)
	GetDue(ctx context.Context) ([]models.Campaign, error)
	SetStatus(ctx context.Context, id, status string) error
}

type ApiTokenRepoI interface {
	Create(ctx context.Context, label, secretHash string) (*models.ApiToken, error)
	GetByID(ctx context.Context, id string) (*models.ApiToken, error)
}
