package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ly2xxx/gco/internal/models"
	"github.com/ly2xxx/gco/internal/services"
	"github.com/ly2xxx/gco/pkg/utils"
)

// DatasetHandler exposes load-attempt metadata and the manual refresh.
type DatasetHandler struct {
	loader *services.DataLoader
	logger *logrus.Logger
}

func NewDatasetHandler(loader *services.DataLoader, logger *logrus.Logger) *DatasetHandler {
	return &DatasetHandler{
		loader: loader,
		logger: logger,
	}
}

// datasetMeta is attached to every data response, so clients can always tell
// whether they are looking at the sheet or the demo sample.
func datasetMeta(dataset *models.Dataset) *utils.Meta {
	return &utils.Meta{
		Source:        string(dataset.Source),
		LoadID:        dataset.LoadID.String(),
		FetchedAt:     dataset.FetchedAt,
		Records:       len(dataset.Records),
		DroppedRows:   dataset.DroppedRows,
		DuplicateRows: dataset.DuplicateRows,
	}
}

// GetDataset returns metadata about the currently served load attempt.
func (h *DatasetHandler) GetDataset(c *gin.Context) {
	dataset := h.loader.Load(c.Request.Context())
	utils.SendSuccess(c, datasetMeta(dataset))
}

// RefreshDataset drops the cached dataset and loads fresh from the sheet.
func (h *DatasetHandler) RefreshDataset(c *gin.Context) {
	h.logger.Info("Manual dataset refresh requested")
	dataset := h.loader.Refresh(c.Request.Context())
	utils.SendSuccess(c, datasetMeta(dataset))
}
