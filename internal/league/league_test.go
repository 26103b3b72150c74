package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRosterSize(t *testing.T) {
	assert.Len(t, Players, 12, "the 2025 roster has 12 registered players")
}

func TestTournamentCalendar(t *testing.T) {
	assert.Len(t, Tournaments, 3)

	seen := make(map[string]bool)
	for _, tour := range Tournaments {
		assert.Len(t, tour.Games, 4, "each cup is played over 4 games")
		assert.NotEmpty(t, tour.Period)
		for _, g := range tour.Games {
			assert.False(t, seen[g], "game label %s appears in two cups", g)
			seen[g] = true
		}
	}
	assert.Len(t, seen, 12, "season is 12 games across all cups")
}

func TestTournamentByName(t *testing.T) {
	tour, ok := TournamentByName("暖男杯")
	assert.True(t, ok)
	assert.Equal(t, "01/06 - 31/07", tour.Period)
	assert.Equal(t, []string{"Game 5", "Game 6", "Game 7", "Game 8"}, tour.Games)

	_, ok = TournamentByName("nonexistent cup")
	assert.False(t, ok)
}

func TestTournamentNamesOrder(t *testing.T) {
	assert.Equal(t, []string{"提提卡卡杯", "暖男杯", "凯尔特人杯"}, TournamentNames())
}
