package models

// PlayerStats represents a player's aggregates over whatever records they
// appear in. When Games is zero every aggregate pointer is nil; a player with
// no rounds has no average, not an average of zero. Consistency is the sample
// standard deviation of net score and needs at least two games to exist.
type PlayerStats struct {
	Player            string   `json:"player"`
	Games             int      `json:"games"`
	AvgNetScore       *float64 `json:"avg_net_score,omitempty"`
	BestScore         *int     `json:"best_score,omitempty"`
	WorstScore        *int     `json:"worst_score,omitempty"`
	TotalBirdies      *int     `json:"total_birdies,omitempty"`
	TotalPars         *int     `json:"total_pars,omitempty"`
	TotalBogeys       *int     `json:"total_bogeys,omitempty"`
	TotalDoubleBogeys *int     `json:"total_double_bogeys,omitempty"`
	BirdieRate        *float64 `json:"birdie_rate,omitempty"`
	Consistency       *float64 `json:"consistency,omitempty"`
}

// HasData reports whether any rounds back these stats.
func (s PlayerStats) HasData() bool {
	return s.Games > 0
}

// LeaderboardEntry is one row of a tournament leaderboard, ordered by
// average net score ascending with player name breaking ties. Rank is the
// 1-based board position.
type LeaderboardEntry struct {
	Rank              int     `json:"rank"`
	Player            string  `json:"player"`
	GamesPlayed       int     `json:"games_played"`
	TotalScore        int     `json:"total_score"`
	AvgScore          float64 `json:"avg_score"`
	TotalBirdies      int     `json:"total_birdies"`
	TotalPars         int     `json:"total_pars"`
	TotalBogeys       int     `json:"total_bogeys"`
	TotalDoubleBogeys int     `json:"total_double_bogeys"`
}

// LeagueOverview summarizes the whole dataset for the dashboard front page.
// AvgNetScore is nil for an empty dataset.
type LeagueOverview struct {
	TotalPlayers int      `json:"total_players"`
	TotalGames   int      `json:"total_games"`
	TotalRecords int      `json:"total_records"`
	AvgNetScore  *float64 `json:"avg_net_score,omitempty"`
	TotalBirdies int      `json:"total_birdies"`
}

// PlayerComparison is one player's column in the side-by-side comparison
// view. Players with no recorded games are omitted from comparisons, so the
// numeric fields here are always backed by data; Consistency still needs two
// games and stays nil otherwise.
type PlayerComparison struct {
	Player       string   `json:"player"`
	GamesPlayed  int      `json:"games_played"`
	AvgNetScore  float64  `json:"avg_net_score"`
	BestScore    int      `json:"best_score"`
	TotalBirdies int      `json:"total_birdies"`
	BirdieRate   float64  `json:"birdie_rate"`
	Consistency  *float64 `json:"consistency,omitempty"`
}

// TrendPoint is one game on a player's performance timeline.
type TrendPoint struct {
	Game       string `json:"game"`
	Tournament string `json:"tournament"`
	NetScore   int    `json:"net_score"`
}
