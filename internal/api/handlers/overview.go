package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ly2xxx/gco/internal/services"
	"github.com/ly2xxx/gco/internal/stats"
	"github.com/ly2xxx/gco/pkg/utils"
)

// OverviewHandler serves the dashboard front-page metrics.
type OverviewHandler struct {
	loader *services.DataLoader
	logger *logrus.Logger
}

func NewOverviewHandler(loader *services.DataLoader, logger *logrus.Logger) *OverviewHandler {
	return &OverviewHandler{
		loader: loader,
		logger: logger,
	}
}

// GetOverview returns league-wide totals across all tournaments.
func (h *OverviewHandler) GetOverview(c *gin.Context) {
	dataset := h.loader.Load(c.Request.Context())
	overview := stats.Overview(dataset.Records)
	utils.SendSuccessWithMeta(c, overview, datasetMeta(dataset))
}
