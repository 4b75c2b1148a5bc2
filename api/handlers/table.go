package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"claritel/claritel_go_admin_service/models"
	"claritel/claritel_go_admin_service/pkg/logger"
	"claritel/claritel_go_admin_service/pkg/tracing"
)

// GetAssistantTables godoc
// GET /api/assistants/:assistantId/tables
func (h *Handler) GetAssistantTables(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_table.GetAssistantTables", c.Param("assistantId"))
	defer span.Finish()

	resp, err := h.strg.Table().GetAllByAssistant(ctx, c.Param("assistantId"))
	if err != nil {
		h.handleError(c, err, "GetAssistantTables")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateTable godoc
// POST /api/assistants/:assistantId/tables
func (h *Handler) CreateTable(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_table.CreateTable", c.Param("assistantId"))
	defer span.Finish()

	var req models.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, models.NewValidationError(err.Error()), "CreateTable")
		return
	}

	h.log.Info("---CreateTable--->>>", logger.Any("req", req))

	resp, err := h.strg.Table().Create(ctx, c.Param("assistantId"), &req)
	if err != nil {
		h.handleError(c, err, "CreateTable")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// CreateTableGroup godoc
// POST /api/assistants/:assistantId/tables/group
//
// The assistant-creation wizard submits every configured database in one
// call right after the assistant itself is created.
func (h *Handler) CreateTableGroup(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_table.CreateTableGroup", c.Param("assistantId"))
	defer span.Finish()

	var reqs []models.CreateTableRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		h.handleError(c, models.NewValidationError(err.Error()), "CreateTableGroup")
		return
	}

	h.log.Info("---CreateTableGroup--->>>", logger.Int("tables", len(reqs)))

	resp, err := h.strg.Table().CreateGroup(ctx, c.Param("assistantId"), reqs)
	if err != nil {
		h.handleError(c, err, "CreateTableGroup")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetTable godoc
// GET /api/tables/:tableId
func (h *Handler) GetTable(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_table.GetTable", c.Param("tableId"))
	defer span.Finish()

	resp, err := h.strg.Table().GetByID(ctx, c.Param("tableId"))
	if err != nil {
		h.handleError(c, err, "GetTable")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateTable godoc
// PUT /api/tables/:tableId
//
// Schema edits arrive here as the full columns array; there is no
// column-level patch operation.
func (h *Handler) UpdateTable(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_table.UpdateTable", c.Param("tableId"))
	defer span.Finish()

	var req models.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, models.NewValidationError(err.Error()), "UpdateTable")
		return
	}

	h.log.Info("---UpdateTable--->>>", logger.String("id", c.Param("tableId")))

	resp, err := h.strg.Table().Update(ctx, c.Param("tableId"), &req)
	if err != nil {
		h.handleError(c, err, "UpdateTable")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteTable godoc
// DELETE /api/tables/:tableId
func (h *Handler) DeleteTable(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_table.DeleteTable", c.Param("tableId"))
	defer span.Finish()

	h.log.Info("---DeleteTable--->>>", logger.String("id", c.Param("tableId")))

	if err := h.strg.Table().Delete(ctx, c.Param("tableId")); err != nil {
		h.handleError(c, err, "DeleteTable")
		return
	}

	c.Status(http.StatusNoContent)
}
