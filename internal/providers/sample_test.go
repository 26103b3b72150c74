package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ly2xxx/gco/internal/league"
)

func TestSampleGeneratorShape(t *testing.T) {
	records := NewSampleGenerator(2025).Generate()

	require.Len(t, records, 144, "12 players x 3 cups x 4 games")

	players := make(map[string]int)
	games := make(map[string]bool)
	tournaments := make(map[string]bool)
	for _, r := range records {
		players[r.Player]++
		games[r.Game] = true
		tournaments[r.Tournament] = true
	}

	assert.Len(t, players, len(league.Players))
	for _, p := range league.Players {
		assert.Equal(t, 12, players[p], "every roster player gets a full season")
	}
	assert.Len(t, games, 12)
	assert.Len(t, tournaments, 3)
}

func TestSampleGeneratorRanges(t *testing.T) {
	records := NewSampleGenerator(7).Generate()

	for _, r := range records {
		assert.GreaterOrEqual(t, r.NetScore, -15)
		assert.LessOrEqual(t, r.NetScore, 19)
		assert.GreaterOrEqual(t, r.Birdies, 0)
		assert.LessOrEqual(t, r.Birdies, 4)
		assert.GreaterOrEqual(t, r.Pars, 5)
		assert.LessOrEqual(t, r.Pars, 14)
		assert.GreaterOrEqual(t, r.Bogeys, 0)
		assert.LessOrEqual(t, r.Bogeys, 7)
		assert.GreaterOrEqual(t, r.DoubleBogeys, 0)
		assert.LessOrEqual(t, r.DoubleBogeys, 3)
	}
}

func TestSampleGeneratorDeterminism(t *testing.T) {
	a := NewSampleGenerator(42).Generate()
	b := NewSampleGenerator(42).Generate()
	assert.Equal(t, a, b, "same seed must produce identical records")

	g := NewSampleGenerator(42)
	assert.Equal(t, g.Generate(), g.Generate(), "repeated calls must not drift")

	c := NewSampleGenerator(43).Generate()
	assert.NotEqual(t, a, c, "different seeds should differ somewhere")
}

func TestSampleGeneratorGamesMatchCalendar(t *testing.T) {
	records := NewSampleGenerator(1).Generate()

	valid := make(map[string]map[string]bool)
	for _, tour := range league.Tournaments {
		valid[tour.Name] = make(map[string]bool)
		for _, g := range tour.Games {
			valid[tour.Name][g] = true
		}
	}

	for _, r := range records {
		require.Contains(t, valid, r.Tournament)
		assert.True(t, valid[r.Tournament][r.Game],
			"game %s does not belong to %s", r.Game, r.Tournament)
	}
}
