package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ly2xxx/gco/internal/charts"
	"github.com/ly2xxx/gco/internal/league"
	"github.com/ly2xxx/gco/internal/models"
	"github.com/ly2xxx/gco/internal/services"
	"github.com/ly2xxx/gco/internal/stats"
	"github.com/ly2xxx/gco/pkg/utils"
)

// TournamentHandler serves the season calendar and per-cup leaderboards.
type TournamentHandler struct {
	loader *services.DataLoader
	logger *logrus.Logger
}

func NewTournamentHandler(loader *services.DataLoader, logger *logrus.Logger) *TournamentHandler {
	return &TournamentHandler{
		loader: loader,
		logger: logger,
	}
}

// leaderboardResponse wraps a board with its calendar entry.
type leaderboardResponse struct {
	Tournament string                    `json:"tournament"`
	Period     string                    `json:"period,omitempty"`
	Entries    []models.LeaderboardEntry `json:"entries"`
}

// ListTournaments returns the season calendar.
func (h *TournamentHandler) ListTournaments(c *gin.Context) {
	utils.SendSuccess(c, league.Tournaments)
}

// GetLeaderboard ranks a tournament's players. The tournament must be on the
// calendar or present in the data; a calendar cup nobody has played yet
// returns an empty board.
func (h *TournamentHandler) GetLeaderboard(c *gin.Context) {
	name := c.Param("name")
	dataset := h.loader.Load(c.Request.Context())

	board, period, ok := h.boardFor(dataset, name)
	if !ok {
		utils.SendNotFound(c, fmt.Sprintf("Unknown tournament %q", name))
		return
	}

	utils.SendSuccessWithMeta(c, leaderboardResponse{
		Tournament: name,
		Period:     period,
		Entries:    board,
	}, datasetMeta(dataset))
}

// GetLeaderboardChart renders the board's total scores as a PNG bar chart.
func (h *TournamentHandler) GetLeaderboardChart(c *gin.Context) {
	name := c.Param("name")
	dataset := h.loader.Load(c.Request.Context())

	board, _, ok := h.boardFor(dataset, name)
	if !ok {
		utils.SendNotFound(c, fmt.Sprintf("Unknown tournament %q", name))
		return
	}

	png, err := charts.LeaderboardChart(name, board)
	if err != nil {
		h.logger.WithError(err).Error("Failed to render leaderboard chart")
		utils.SendInternalError(c, "Failed to render chart")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *TournamentHandler) boardFor(dataset *models.Dataset, name string) ([]models.LeaderboardEntry, string, bool) {
	board := stats.Leaderboard(dataset.Records, name)

	tournament, onCalendar := league.TournamentByName(name)
	if !onCalendar && len(board) == 0 {
		return nil, "", false
	}
	return board, tournament.Period, true
}
