package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"claritel/claritel_go_admin_service/models"
	"claritel/claritel_go_admin_service/pkg/contacts"
	"claritel/claritel_go_admin_service/pkg/logger"
	"claritel/claritel_go_admin_service/pkg/tracing"
)

// CreateBulkCall godoc
// POST /api/bulk-call
//
// Accepts either a JSON body with an inline contact list or a multipart
// form with a "contacts" CSV upload next to the campaign fields.
func (h *Handler) CreateBulkCall(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_campaign.CreateBulkCall", nil)
	defer span.Finish()

	var req models.CreateCampaignRequest

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		req.AssistantId = c.PostForm("assistant_id")
		req.Name = c.PostForm("campaign_name")

		file, err := c.FormFile("contacts")
		if err != nil {
			h.handleError(c, models.NewValidationError("contacts file is required"), "CreateBulkCall")
			return
		}

		f, err := file.Open()
		if err != nil {
			h.handleError(c, err, "CreateBulkCall")
			return
		}
		defer f.Close()

		req.Contacts, err = contacts.Parse(f)
		if err != nil {
			h.handleError(c, models.NewValidationError(err.Error()), "CreateBulkCall")
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.handleError(c, models.NewValidationError(err.Error()), "CreateBulkCall")
			return
		}
	}

	if req.AssistantId == "" || req.Name == "" {
		h.handleError(c, models.NewValidationError("assistant_id and campaign_name are required"), "CreateBulkCall")
		return
	}

	h.log.Info("---CreateBulkCall--->>>",
		logger.String("assistant_id", req.AssistantId),
		logger.Int("contacts", len(req.Contacts)),
	)

	resp, err := h.strg.Campaign().Create(ctx, &req)
	if err != nil {
		h.handleError(c, err, "CreateBulkCall")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetCampaigns godoc
// GET /api/campaigns?assistant_id=...&status=...
func (h *Handler) GetCampaigns(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_campaign.GetCampaigns", c.Request.URL.RawQuery)
	defer span.Finish()

	resp, err := h.strg.Campaign().GetAll(ctx, &models.GetAllCampaignsRequest{
		AssistantId: c.Query("assistant_id"),
		Status:      c.Query("status"),
		Limit:       cast.ToInt(c.Query("limit")),
		Offset:      cast.ToInt(c.Query("offset")),
	})
	if err != nil {
		h.handleError(c, err, "GetCampaigns")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCampaign godoc
// GET /api/campaigns/:campaignId
func (h *Handler) GetCampaign(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_campaign.GetCampaign", c.Param("campaignId"))
	defer span.Finish()

	resp, err := h.strg.Campaign().GetByID(ctx, c.Param("campaignId"))
	if err != nil {
		h.handleError(c, err, "GetCampaign")
		return
	}

	c.JSON(http.StatusOK, resp)
}
