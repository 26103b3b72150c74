package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RawRow is one CSV row as read from the source, before any coercion.
// Every field is the untrimmed cell text; missing cells are empty strings.
type RawRow struct {
	Player       string
	Tournament   string
	Game         string
	NetScore     string
	Birdies      string
	Pars         string
	Bogeys       string
	DoubleBogeys string
}

// ScoreRecord represents one player's result for one game, fully normalized.
// Player and Tournament are never empty; the count fields are non-negative.
type ScoreRecord struct {
	Player       string `json:"player"`
	Tournament   string `json:"tournament"`
	Game         string `json:"game"`
	NetScore     int    `json:"net_score"`
	Birdies      int    `json:"birdies"`
	Pars         int    `json:"pars"`
	Bogeys       int    `json:"bogeys"`
	DoubleBogeys int    `json:"double_bogeys"`
}

// Key identifies the logical row for duplicate detection. Duplicate keys are
// legal in a dataset (a re-submitted score stays in until the sheet is fixed)
// but are counted so the condition is visible.
func (r ScoreRecord) Key() string {
	return fmt.Sprintf("%s|%s|%s", r.Player, r.Tournament, r.Game)
}

// DatasetSource tells which acquisition path produced a dataset.
type DatasetSource string

const (
	SourceRemote DatasetSource = "remote"
	SourceSample DatasetSource = "sample"
)

// Dataset is the result of one load attempt. Datasets are immutable once
// built; a new attempt gets a new LoadID even when the rows are identical.
type Dataset struct {
	LoadID        uuid.UUID     `json:"load_id"`
	Source        DatasetSource `json:"source"`
	FetchedAt     time.Time     `json:"fetched_at"`
	Records       []ScoreRecord `json:"records"`
	DroppedRows   int           `json:"dropped_rows"`
	DuplicateRows int           `json:"duplicate_rows"`
}
