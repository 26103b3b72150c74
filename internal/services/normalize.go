package services

import (
	"math"
	"strconv"

	"github.com/ly2xxx/gco/internal/models"
)

// NormalizeResult is what validation makes of one batch of raw rows.
// Dropped counts rows that could not become a valid record; Duplicates counts
// extra rows sharing a (player, tournament, game) key with an earlier one.
// Duplicate rows stay in Records: a re-submitted score is a sheet problem to
// fix upstream, not data to silently discard.
type NormalizeResult struct {
	Records    []models.ScoreRecord `json:"records"`
	Dropped    int                  `json:"dropped"`
	Duplicates int                  `json:"duplicates"`
}

// Normalize validates raw sheet rows into score records. A row is dropped
// when Player or Tournament is empty or any numeric cell fails integer
// coercion; nothing is ever zero-filled. Order is preserved, and feeding the
// output of a previous pass back in changes nothing.
func Normalize(rows []models.RawRow) NormalizeResult {
	result := NormalizeResult{
		Records: make([]models.ScoreRecord, 0, len(rows)),
	}
	seen := make(map[string]bool, len(rows))

	for _, row := range rows {
		record, ok := coerceRow(row)
		if !ok {
			result.Dropped++
			continue
		}
		key := record.Key()
		if seen[key] {
			result.Duplicates++
		}
		seen[key] = true
		result.Records = append(result.Records, record)
	}
	return result
}

func coerceRow(row models.RawRow) (models.ScoreRecord, bool) {
	if row.Player == "" || row.Tournament == "" {
		return models.ScoreRecord{}, false
	}

	net, ok := coerceInt(row.NetScore)
	if !ok {
		return models.ScoreRecord{}, false
	}
	birdies, ok := coerceInt(row.Birdies)
	if !ok {
		return models.ScoreRecord{}, false
	}
	pars, ok := coerceInt(row.Pars)
	if !ok {
		return models.ScoreRecord{}, false
	}
	bogeys, ok := coerceInt(row.Bogeys)
	if !ok {
		return models.ScoreRecord{}, false
	}
	doubles, ok := coerceInt(row.DoubleBogeys)
	if !ok {
		return models.ScoreRecord{}, false
	}

	return models.ScoreRecord{
		Player:       row.Player,
		Tournament:   row.Tournament,
		Game:         row.Game,
		NetScore:     net,
		Birdies:      birdies,
		Pars:         pars,
		Bogeys:       bogeys,
		DoubleBogeys: doubles,
	}, true
}

// coerceInt parses a sheet cell as an integer. Sheets sometimes export whole
// numbers as "3.0", so integral floats are accepted; anything fractional,
// empty, or non-numeric is a coercion failure.
func coerceInt(cell string) (int, bool) {
	if cell == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(cell); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
