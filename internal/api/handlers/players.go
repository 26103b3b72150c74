package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ly2xxx/gco/internal/charts"
	"github.com/ly2xxx/gco/internal/services"
	"github.com/ly2xxx/gco/internal/stats"
	"github.com/ly2xxx/gco/pkg/utils"
)

const (
	minComparePlayers = 2
	maxComparePlayers = 6
)

// PlayerHandler serves per-player statistics, trends, and comparisons.
type PlayerHandler struct {
	loader *services.DataLoader
	logger *logrus.Logger
}

func NewPlayerHandler(loader *services.DataLoader, logger *logrus.Logger) *PlayerHandler {
	return &PlayerHandler{
		loader: loader,
		logger: logger,
	}
}

// ListPlayers returns every player present in the current dataset, sorted.
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	dataset := h.loader.Load(c.Request.Context())
	utils.SendSuccessWithMeta(c, stats.DistinctPlayers(dataset.Records), datasetMeta(dataset))
}

// GetPlayerStats returns one player's aggregates, 404 when the player has no
// recorded games.
func (h *PlayerHandler) GetPlayerStats(c *gin.Context) {
	name := c.Param("name")
	dataset := h.loader.Load(c.Request.Context())

	playerStats := stats.ForPlayer(dataset.Records, name)
	if !playerStats.HasData() {
		utils.SendNotFound(c, fmt.Sprintf("No games recorded for player %q", name))
		return
	}
	utils.SendSuccessWithMeta(c, playerStats, datasetMeta(dataset))
}

// GetPlayerTrend returns the player's games in playing order.
func (h *PlayerHandler) GetPlayerTrend(c *gin.Context) {
	name := c.Param("name")
	dataset := h.loader.Load(c.Request.Context())

	trend := stats.Trend(dataset.Records, name)
	if len(trend) == 0 {
		utils.SendNotFound(c, fmt.Sprintf("No games recorded for player %q", name))
		return
	}
	utils.SendSuccessWithMeta(c, trend, datasetMeta(dataset))
}

// GetPlayerTrendChart renders the trend as a PNG. Unknown players get the
// placeholder image rather than an error, so <img> tags never break.
func (h *PlayerHandler) GetPlayerTrendChart(c *gin.Context) {
	name := c.Param("name")
	dataset := h.loader.Load(c.Request.Context())

	png, err := charts.TrendChart(name, stats.Trend(dataset.Records, name))
	if err != nil {
		h.logger.WithError(err).Error("Failed to render trend chart")
		utils.SendInternalError(c, "Failed to render chart")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// ComparePlayers returns side-by-side aggregates for 2 to 6 players given as
// a comma-separated players query parameter.
func (h *PlayerHandler) ComparePlayers(c *gin.Context) {
	names, err := compareList(c.Query("players"))
	if err != nil {
		utils.SendValidationError(c, "Invalid players parameter", err.Error())
		return
	}

	dataset := h.loader.Load(c.Request.Context())
	utils.SendSuccessWithMeta(c, stats.Compare(dataset.Records, names), datasetMeta(dataset))
}

// CompareChart renders the comparison as a PNG bar chart.
func (h *PlayerHandler) CompareChart(c *gin.Context) {
	names, err := compareList(c.Query("players"))
	if err != nil {
		utils.SendValidationError(c, "Invalid players parameter", err.Error())
		return
	}

	dataset := h.loader.Load(c.Request.Context())
	png, err := charts.ComparisonChart(stats.Compare(dataset.Records, names))
	if err != nil {
		h.logger.WithError(err).Error("Failed to render comparison chart")
		utils.SendInternalError(c, "Failed to render chart")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func compareList(raw string) ([]string, error) {
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	if len(names) < minComparePlayers || len(names) > maxComparePlayers {
		return nil, fmt.Errorf("expected %d to %d comma-separated player names, got %d",
			minComparePlayers, maxComparePlayers, len(names))
	}
	return names, nil
}
