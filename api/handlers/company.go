package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"claritel/claritel_go_admin_service/models"
	"claritel/claritel_go_admin_service/pkg/logger"
	"claritel/claritel_go_admin_service/pkg/tracing"
)

// GetCompanies godoc
// GET /api/companies
func (h *Handler) GetCompanies(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_company.GetCompanies", c.Request.URL.RawQuery)
	defer span.Finish()

	resp, err := h.strg.Company().GetAll(ctx, &models.GetAllCompaniesRequest{
		Search: c.Query("search"),
		Limit:  cast.ToInt(c.Query("limit")),
		Offset: cast.ToInt(c.Query("offset")),
	})
	if err != nil {
		h.handleError(c, err, "GetCompanies")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateCompany godoc
// POST /api/companies
func (h *Handler) CreateCompany(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_company.CreateCompany", nil)
	defer span.Finish()

	var req models.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, models.NewValidationError(err.Error()), "CreateCompany")
		return
	}

	h.log.Info("---CreateCompany--->>>", logger.Any("req", req))

	resp, err := h.strg.Company().Create(ctx, &req)
	if err != nil {
		h.handleError(c, err, "CreateCompany")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetCompany godoc
// GET /api/companies/:companyId
func (h *Handler) GetCompany(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_company.GetCompany", c.Param("companyId"))
	defer span.Finish()

	resp, err := h.strg.Company().GetByID(ctx, c.Param("companyId"))
	if err != nil {
		h.handleError(c, err, "GetCompany")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateCompany godoc
// PUT /api/companies/:companyId
func (h *Handler) UpdateCompany(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_company.UpdateCompany", c.Param("companyId"))
	defer span.Finish()

	var req models.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, models.NewValidationError(err.Error()), "UpdateCompany")
		return
	}

	h.log.Info("---UpdateCompany--->>>", logger.String("id", c.Param("companyId")))

	resp, err := h.strg.Company().Update(ctx, c.Param("companyId"), &req)
	if err != nil {
		h.handleError(c, err, "UpdateCompany")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteCompany godoc
// DELETE /api/companies/:companyId
func (h *Handler) DeleteCompany(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_company.DeleteCompany", c.Param("companyId"))
	defer span.Finish()

	h.log.Info("---DeleteCompany--->>>", logger.String("id", c.Param("companyId")))

	if err := h.strg.Company().Delete(ctx, c.Param("companyId")); err != nil {
		h.handleError(c, err, "DeleteCompany")
		return
	}

	c.Status(http.StatusNoContent)
}
