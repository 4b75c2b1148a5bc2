package handlers

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"

	"claritel/claritel_go_admin_service/pkg/logger"
	"claritel/claritel_go_admin_service/pkg/tracing"
)

var sh = "Sheet1"

// ExportTable godoc
// GET /api/tables/:tableId/export
//
// Builds an xlsx snapshot of the table, uploads it to the reports bucket
// and returns the download link. The header row uses display names, the
// data rows are keyed by column name.
func (h *Handler) ExportTable(c *gin.Context) {
	span, ctx := tracing.StartSpanFromContext(c.Request.Context(), "api_export.ExportTable", c.Param("tableId"))
	defer span.Finish()

	table, err := h.strg.Table().GetByID(ctx, c.Param("tableId"))
	if err != nil {
		h.handleError(c, err, "ExportTable")
		return
	}

	records, err := h.strg.Record().GetAll(ctx, table.Id)
	if err != nil {
		h.handleError(c, err, "ExportTable")
		return
	}

	file := excelize.NewFile()

	for i, col := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			h.handleError(c, err, "ExportTable")
			return
		}
		if err := file.SetCellValue(sh, cell, col.DisplayName); err != nil {
			h.handleError(c, err, "ExportTable")
			return
		}
	}

	for r, rec := range records {
		for i, col := range table.Columns {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				h.handleError(c, err, "ExportTable")
				return
			}
			if err := file.SetCellValue(sh, cell, cast.ToString(rec.Data[col.Name])); err != nil {
				h.handleError(c, err, "ExportTable")
				return
			}
		}
	}

	var (
		filename = fmt.Sprintf("%s_%d.xlsx", table.Name, time.Now().Unix())
		filepath = "./" + filename
	)

	if err := file.SaveAs(filepath); err != nil {
		h.handleError(c, errors.Wrap(err, "file.SaveAs"), "ExportTable")
		return
	}
	defer func() {
		_ = os.Remove(filepath)
	}()

	minioClient, err := minio.New(h.cfg.MinioHost, &minio.Options{
		Creds:  credentials.NewStaticV4(h.cfg.MinioAccessKeyID, h.cfg.MinioSecretKey, ""),
		Secure: h.cfg.MinioSecure,
	})
	if err != nil {
		h.handleError(c, errors.Wrap(err, "minio.New"), "ExportTable")
		return
	}

	_, err = minioClient.FPutObject(
		ctx,
		h.cfg.MinioReportsBucket,
		filename,
		filepath,
		minio.PutObjectOptions{ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	)
	if err != nil {
		h.handleError(c, errors.Wrap(err, "minioClient.FPutObject"), "ExportTable")
		return
	}

	h.log.Info("---ExportTable--->>>",
		logger.String("table_id", table.Id),
		logger.String("file", filename),
	)

	c.JSON(http.StatusOK, gin.H{
		"link": fmt.Sprintf("%s/%s/%s", h.cfg.MinioHost, h.cfg.MinioReportsBucket, filename),
	})
}
