package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"claritel/claritel_go_admin_service/models"
	"claritel/claritel_go_admin_service/pkg/logger"
	"claritel/claritel_go_admin_service/pkg/tracing"
)

// GetAssistants godoc
// GET /api/assistants?company_id=...
func (h *Handler) GetAssistants(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_assistant.GetAssistants", c.Request.URL.RawQuery)
	defer span.Finish()

	resp, err := h.strg.Assistant().GetAll(ctx, &models.GetAllAssistantsRequest{
		CompanyId: c.Query("company_id"),
		Search:    c.Query("search"),
		Limit:     cast.ToInt(c.Query("limit")),
		Offset:    cast.ToInt(c.Query("offset")),
	})
	if err != nil {
		h.handleError(c, err, "GetAssistants")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateAssistant godoc
// POST /api/assistants
func (h *Handler) CreateAssistant(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_assistant.CreateAssistant", nil)
	defer span.Finish()

	var req models.CreateAssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, models.NewValidationError(err.Error()), "CreateAssistant")
		return
	}

	h.log.Info("---CreateAssistant--->>>", logger.Any("req", req))

	resp, err := h.strg.Assistant().Create(ctx, &req)
	if err != nil {
		h.handleError(c, err, "CreateAssistant")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetAssistant godoc
// GET /api/assistants/:assistantId
func (h *Handler) GetAssistant(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_assistant.GetAssistant", c.Param("assistantId"))
	defer span.Finish()

	resp, err := h.strg.Assistant().GetByID(ctx, c.Param("assistantId"))
	if err != nil {
		h.handleError(c, err, "GetAssistant")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateAssistant godoc
// PUT /api/assistants/:assistantId
func (h *Handler) UpdateAssistant(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_assistant.UpdateAssistant", c.Param("assistantId"))
	defer span.Finish()

	var req models.UpdateAssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, models.NewValidationError(err.Error()), "UpdateAssistant")
		return
	}

	h.log.Info("---UpdateAssistant--->>>", logger.String("id", c.Param("assistantId")))

	resp, err := h.strg.Assistant().Update(ctx, c.Param("assistantId"), &req)
	if err != nil {
		h.handleError(c, err, "UpdateAssistant")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteAssistant godoc
// DELETE /api/assistants/:assistantId
func (h *Handler) DeleteAssistant(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_assistant.DeleteAssistant", c.Param("assistantId"))
	defer span.Finish()

	h.log.Info("---DeleteAssistant--->>>", logger.String("id", c.Param("assistantId")))

	if err := h.strg.Assistant().Delete(ctx, c.Param("assistantId")); err != nil {
		h.handleError(c, err, "DeleteAssistant")
		return
	}

	c.Status(http.StatusNoContent)
}
