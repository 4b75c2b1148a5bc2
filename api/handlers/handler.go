package handlers

import (
	"github.com/gin-gonic/gin"

	"claritel/claritel_go_admin_service/config"
	"claritel/claritel_go_admin_service/pkg/helper"
	"claritel/claritel_go_admin_service/pkg/logger"
	"claritel/claritel_go_admin_service/storage"
)

type Handler struct {
	cfg  config.Config
	log  logger.LoggerI
	strg storage.StorageI
}

func NewHandler(cfg config.Config, log logger.LoggerI, strg storage.StorageI) *Handler {
	return &Handler{
		cfg:  cfg,
		log:  log,
		strg: strg,
	}
}

// ErrorResponse is the structured error body; clients read Message first
// and fall back to transport-level errors when it is absent.
type ErrorResponse struct {
	Message string `json:"message"`
}

func (h *Handler) handleError(c *gin.Context, err error, op string) {
	status, message := helper.StatusFromError(err)

	h.log.Error("---"+op+"--->>>", logger.Error(err), logger.Int("status", status))

	c.JSON(status, ErrorResponse{Message: message})
}
