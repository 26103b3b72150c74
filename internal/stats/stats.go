// Package stats computes league aggregates from normalized score records.
// Every function here is pure: same records in, same numbers out, no clocks,
// no stores, no goroutines.
package stats

import (
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/ly2xxx/gco/internal/models"
)

// ForPlayer aggregates every record belonging to one player. A player with no
// records gets Games == 0 and nil aggregates, never zeros.
func ForPlayer(records []models.ScoreRecord, player string) models.PlayerStats {
	ps := models.PlayerStats{Player: player}

	var nets []float64
	var birdies, pars, bogeys, doubles int
	best, worst := math.MaxInt, math.MinInt

	for _, r := range records {
		if r.Player != player {
			continue
		}
		nets = append(nets, float64(r.NetScore))
		birdies += r.Birdies
		pars += r.Pars
		bogeys += r.Bogeys
		doubles += r.DoubleBogeys
		if r.NetScore < best {
			best = r.NetScore
		}
		if r.NetScore > worst {
			worst = r.NetScore
		}
	}

	ps.Games = len(nets)
	if ps.Games == 0 {
		return ps
	}

	avg := stat.Mean(nets, nil)
	rate := float64(birdies) / float64(ps.Games)
	ps.AvgNetScore = &avg
	ps.BestScore = &best
	ps.WorstScore = &worst
	ps.TotalBirdies = &birdies
	ps.TotalPars = &pars
	ps.TotalBogeys = &bogeys
	ps.TotalDoubleBogeys = &doubles
	ps.BirdieRate = &rate
	if ps.Games >= 2 {
		sd := stat.StdDev(nets, nil)
		ps.Consistency = &sd
	}
	return ps
}

// Leaderboard ranks every player with at least one game in the tournament.
// Order is average net score ascending (lower is better), ties broken by
// player name; ranks run 1..n in board order. The returned slice is empty,
// not nil, when nobody has played.
func Leaderboard(records []models.ScoreRecord, tournament string) []models.LeaderboardEntry {
	type acc struct {
		games, total, birdies, pars, bogeys, doubles int
	}
	byPlayer := make(map[string]*acc)

	for _, r := range records {
		if r.Tournament != tournament {
			continue
		}
		a, ok := byPlayer[r.Player]
		if !ok {
			a = &acc{}
			byPlayer[r.Player] = a
		}
		a.games++
		a.total += r.NetScore
		a.birdies += r.Birdies
		a.pars += r.Pars
		a.bogeys += r.Bogeys
		a.doubles += r.DoubleBogeys
	}

	entries := make([]models.LeaderboardEntry, 0, len(byPlayer))
	for player, a := range byPlayer {
		entries = append(entries, models.LeaderboardEntry{
			Player:            player,
			GamesPlayed:       a.games,
			TotalScore:        a.total,
			AvgScore:          round2(float64(a.total) / float64(a.games)),
			TotalBirdies:      a.birdies,
			TotalPars:         a.pars,
			TotalBogeys:       a.bogeys,
			TotalDoubleBogeys: a.doubles,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].AvgScore != entries[j].AvgScore {
			return entries[i].AvgScore < entries[j].AvgScore
		}
		return entries[i].Player < entries[j].Player
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// Overview summarizes the dataset for the dashboard front page.
func Overview(records []models.ScoreRecord) models.LeagueOverview {
	players := make(map[string]struct{})
	games := make(map[string]struct{})
	var birdies int
	var nets []float64

	for _, r := range records {
		players[r.Player] = struct{}{}
		games[r.Game] = struct{}{}
		birdies += r.Birdies
		nets = append(nets, float64(r.NetScore))
	}

	ov := models.LeagueOverview{
		TotalPlayers: len(players),
		TotalGames:   len(games),
		TotalRecords: len(records),
		TotalBirdies: birdies,
	}
	if len(nets) > 0 {
		avg := stat.Mean(nets, nil)
		ov.AvgNetScore = &avg
	}
	return ov
}

// Compare builds side-by-side columns for the requested players, preserving
// request order and silently omitting players with no recorded games.
func Compare(records []models.ScoreRecord, players []string) []models.PlayerComparison {
	out := make([]models.PlayerComparison, 0, len(players))
	for _, p := range players {
		ps := ForPlayer(records, p)
		if !ps.HasData() {
			continue
		}
		out = append(out, models.PlayerComparison{
			Player:       p,
			GamesPlayed:  ps.Games,
			AvgNetScore:  *ps.AvgNetScore,
			BestScore:    *ps.BestScore,
			TotalBirdies: *ps.TotalBirdies,
			BirdieRate:   *ps.BirdieRate,
			Consistency:  ps.Consistency,
		})
	}
	return out
}

// Trend returns a player's games in playing order, so the dashboard can plot
// net score across the season. Labels like "Game 10" sort by their numeric
// suffix; labels without one fall back to plain string order.
func Trend(records []models.ScoreRecord, player string) []models.TrendPoint {
	var points []models.TrendPoint
	for _, r := range records {
		if r.Player != player {
			continue
		}
		points = append(points, models.TrendPoint{
			Game:       r.Game,
			Tournament: r.Tournament,
			NetScore:   r.NetScore,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return gameLess(points[i].Game, points[j].Game)
	})
	return points
}

// Filter narrows records to the given tournaments and players. An empty
// filter slice means "keep all" for that dimension, matching the dashboard's
// default of everything selected.
func Filter(records []models.ScoreRecord, tournaments, players []string) []models.ScoreRecord {
	tset := toSet(tournaments)
	pset := toSet(players)

	out := make([]models.ScoreRecord, 0, len(records))
	for _, r := range records {
		if tset != nil {
			if _, ok := tset[r.Tournament]; !ok {
				continue
			}
		}
		if pset != nil {
			if _, ok := pset[r.Player]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// DistinctPlayers lists every player present in the records, sorted by name.
func DistinctPlayers(records []models.ScoreRecord) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		seen[r.Player] = struct{}{}
	}
	players := make([]string, 0, len(seen))
	for p := range seen {
		players = append(players, p)
	}
	sort.Strings(players)
	return players
}

func toSet(items []string) map[string]struct{} {
	if len(items) == 0 {
		return nil
	}
	s := make(map[string]struct{}, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

// gameLess orders game labels by trailing number when both carry one, so
// "Game 9" plays before "Game 10".
func gameLess(a, b string) bool {
	an, aok := trailingNumber(a)
	bn, bok := trailingNumber(b)
	if aok && bok && an != bn {
		return an < bn
	}
	return a < b
}

func trailingNumber(label string) (int, bool) {
	i := len(label)
	for i > 0 && label[i-1] >= '0' && label[i-1] <= '9' {
		i--
	}
	if i == len(label) {
		return 0, false
	}
	n, err := strconv.Atoi(label[i:])
	if err != nil {
		return 0, false
	}
	return n, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
