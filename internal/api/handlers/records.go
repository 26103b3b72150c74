package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ly2xxx/gco/internal/services"
	"github.com/ly2xxx/gco/internal/stats"
	"github.com/ly2xxx/gco/pkg/utils"
)

const exportFilename = "gco_golf_data"

// RecordsHandler serves the raw, filterable record list and its downloads.
type RecordsHandler struct {
	loader *services.DataLoader
	logger *logrus.Logger
}

func NewRecordsHandler(loader *services.DataLoader, logger *logrus.Logger) *RecordsHandler {
	return &RecordsHandler{
		loader: loader,
		logger: logger,
	}
}

// ListRecords returns score records filtered by repeatable tournament and
// player query parameters. format=csv or format=xlsx switches the response
// to a file download with the same filtering applied.
func (h *RecordsHandler) ListRecords(c *gin.Context) {
	dataset := h.loader.Load(c.Request.Context())
	filtered := stats.Filter(dataset.Records,
		queryList(c, "tournament"),
		queryList(c, "player"),
	)

	switch format := c.DefaultQuery("format", "json"); format {
	case "json":
		utils.SendSuccessWithMeta(c, filtered, datasetMeta(dataset))
	case "csv":
		data, err := services.ExportCSV(filtered)
		if err != nil {
			h.logger.WithError(err).Error("Failed to export CSV")
			utils.SendInternalError(c, "Failed to export records")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", exportFilename))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	case "xlsx":
		data, err := services.ExportXLSX(filtered)
		if err != nil {
			h.logger.WithError(err).Error("Failed to export XLSX")
			utils.SendInternalError(c, "Failed to export records")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", exportFilename))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		utils.SendValidationError(c, "Invalid format parameter",
			fmt.Sprintf("format must be json, csv, or xlsx, got %q", format))
	}
}

// queryList collects a repeatable query parameter, also splitting any
// comma-separated values, so ?player=a&player=b and ?player=a,b both work.
func queryList(c *gin.Context, key string) []string {
	var values []string
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			if v := strings.TrimSpace(part); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}
