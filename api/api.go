package api

import (
	"github.com/gin-gonic/gin"

	"claritel/claritel_go_admin_service/api/handlers"
	"claritel/claritel_go_admin_service/config"
	"claritel/claritel_go_admin_service/pkg/logger"
	"claritel/claritel_go_admin_service/storage"
)

// SetUpRouter builds the REST surface of the admin service.
func SetUpRouter(cfg config.Config, log logger.LoggerI, strg storage.StorageI) *gin.Engine {
	switch cfg.Environment {
	case config.ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case config.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	h := handlers.NewHandler(cfg, log, strg)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": cfg.Version})
	})

	api := router.Group("/api", AuthMiddleware(cfg, strg))
	{
		api.GET("/companies", h.GetCompanies)
		api.POST("/companies", h.CreateCompany)
		api.GET("/companies/:companyId", h.GetCompany)
		api.PUT("/companies/:companyId", h.UpdateCompany)
		api.DELETE("/companies/:companyId", h.DeleteCompany)

		api.GET("/assistants", h.GetAssistants)
		api.POST("/assistants", h.CreateAssistant)
		api.GET("/assistants/:assistantId", h.GetAssistant)
		api.PUT("/assistants/:assistantId", h.UpdateAssistant)
		api.DELETE("/assistants/:assistantId", h.DeleteAssistant)

		api.GET("/assistants/:assistantId/tables", h.GetAssistantTables)
		api.POST("/assistants/:assistantId/tables", h.CreateTable)
		api.POST("/assistants/:assistantId/tables/group", h.CreateTableGroup)

		api.GET("/tables/:tableId", h.GetTable)
		api.PUT("/tables/:tableId", h.UpdateTable)
		api.DELETE("/tables/:tableId", h.DeleteTable)
		api.GET("/tables/:tableId/export", h.ExportTable)

		api.GET("/tables/:tableId/records", h.GetRecords)
		api.POST("/tables/:tableId/records", h.InsertRecords)
		api.PUT("/records/:recordId", h.UpdateRecord)
		api.DELETE("/records/:recordId", h.DeleteRecord)

		api.POST("/bulk-call", h.CreateBulkCall)
		api.GET("/campaigns", h.GetCampaigns)
		api.GET("/campaigns/:campaignId", h.GetCampaign)
	}

	return router
}
