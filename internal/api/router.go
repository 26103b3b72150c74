package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ly2xxx/gco/internal/api/handlers"
	"github.com/ly2xxx/gco/internal/services"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, loader *services.DataLoader, logger *logrus.Logger) {
	// Initialize handlers
	overviewHandler := handlers.NewOverviewHandler(loader, logger)
	playerHandler := handlers.NewPlayerHandler(loader, logger)
	tournamentHandler := handlers.NewTournamentHandler(loader, logger)
	recordsHandler := handlers.NewRecordsHandler(loader, logger)
	datasetHandler := handlers.NewDatasetHandler(loader, logger)

	// Overview endpoint
	group.GET("/overview", overviewHandler.GetOverview)

	// Player endpoints. The static compare routes take precedence over the
	// :name parameter, so "compare" is not a valid player name.
	group.GET("/players", playerHandler.ListPlayers)
	group.GET("/players/compare", playerHandler.ComparePlayers)
	group.GET("/players/compare/chart", playerHandler.CompareChart)
	group.GET("/players/:name/stats", playerHandler.GetPlayerStats)
	group.GET("/players/:name/trend", playerHandler.GetPlayerTrend)
	group.GET("/players/:name/chart", playerHandler.GetPlayerTrendChart)

	// Tournament endpoints
	group.GET("/tournaments", tournamentHandler.ListTournaments)
	group.GET("/tournaments/:name/leaderboard", tournamentHandler.GetLeaderboard)
	group.GET("/tournaments/:name/chart", tournamentHandler.GetLeaderboardChart)

	// Raw records with filtering and file export
	group.GET("/records", recordsHandler.ListRecords)

	// Dataset metadata and manual refresh
	group.GET("/dataset", datasetHandler.GetDataset)
	group.POST("/dataset/refresh", datasetHandler.RefreshDataset)
}
