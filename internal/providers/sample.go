package providers

import (
	"github.com/brianvoe/gofakeit/v7"

	"github.com/ly2xxx/gco/internal/league"
	"github.com/ly2xxx/gco/internal/models"
)

// SampleGenerator builds the fallback dataset used whenever the sheet cannot
// be loaded. Generation is seeded per call, so the same seed always produces
// the same records and the dashboard stays stable between reloads.
type SampleGenerator struct {
	seed int64
}

// NewSampleGenerator creates a generator for the given seed.
func NewSampleGenerator(seed int64) *SampleGenerator {
	return &SampleGenerator{seed: seed}
}

// Seed returns the seed the generator was built with.
func (g *SampleGenerator) Seed() int64 {
	return g.seed
}

// Generate produces one round per roster player for every game on the season
// calendar. Scores stay inside the ranges real league play produces: net
// score -15..19, birdies 0..4, pars 5..14, bogeys 0..7, double bogeys 0..3.
func (g *SampleGenerator) Generate() []models.ScoreRecord {
	faker := gofakeit.New(uint64(g.seed))

	var records []models.ScoreRecord
	for _, player := range league.Players {
		for _, tournament := range league.Tournaments {
			for _, game := range tournament.Games {
				records = append(records, models.ScoreRecord{
					Player:       player,
					Tournament:   tournament.Name,
					Game:         game,
					NetScore:     faker.Number(-15, 19),
					Birdies:      faker.Number(0, 4),
					Pars:         faker.Number(5, 14),
					Bogeys:       faker.Number(0, 7),
					DoubleBogeys: faker.Number(0, 3),
				})
			}
		}
	}
	return records
}
