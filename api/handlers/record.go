package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"claritel/claritel_go_admin_service/models"
	"claritel/claritel_go_admin_service/pkg/logger"
	"claritel/claritel_go_admin_service/pkg/tracing"
)

// GetRecords godoc
// GET /api/tables/:tableId/records
func (h *Handler) GetRecords(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_record.GetRecords", c.Param("tableId"))
	defer span.Finish()

	resp, err := h.strg.Record().GetAll(ctx, c.Param("tableId"))
	if err != nil {
		h.handleError(c, err, "GetRecords")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// InsertRecords godoc
// POST /api/tables/:tableId/records
//
// Single-record creates come through the same batch contract as bulk
// imports; the batch is transactional.
func (h *Handler) InsertRecords(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_record.InsertRecords", c.Param("tableId"))
	defer span.Finish()

	var req models.InsertRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, models.NewValidationError(err.Error()), "InsertRecords")
		return
	}

	h.log.Info("---InsertRecords--->>>",
		logger.String("table_id", c.Param("tableId")),
		logger.Int("records", len(req.Records)),
	)

	if err := h.strg.Record().Insert(ctx, c.Param("tableId"), req.Records); err != nil {
		h.handleError(c, err, "InsertRecords")
		return
	}

	c.Status(http.StatusCreated)
}

// UpdateRecord godoc
// PUT /api/records/:recordId
//
// The submitted data replaces the stored document wholesale; keys absent
// from the payload are gone afterwards.
func (h *Handler) UpdateRecord(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_record.UpdateRecord", c.Param("recordId"))
	defer span.Finish()

	var req models.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, models.NewValidationError(err.Error()), "UpdateRecord")
		return
	}

	h.log.Info("---UpdateRecord--->>>", logger.String("id", c.Param("recordId")))

	if err := h.strg.Record().Update(ctx, c.Param("recordId"), req.Data); err != nil {
		h.handleError(c, err, "UpdateRecord")
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteRecord godoc
// DELETE /api/records/:recordId
func (h *Handler) DeleteRecord(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_record.DeleteRecord", c.Param("recordId"))
	defer span.Finish()

	h.log.Info("---DeleteRecord--->>>", logger.String("id", c.Param("recordId")))

	if err := h.strg.Record().Delete(ctx, c.Param("recordId")); err != nil {
		h.handleError(c, err, "DeleteRecord")
		return
	}

	c.Status(http.StatusNoContent)
}
