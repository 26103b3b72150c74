// Package league holds the fixed facts of the GCO golf league 2025 season:
// the roster, the tournament calendar, and the Google Sheets document the
// scores are published in.
package league

// SheetID is the Google Sheets document the league publishes scores to.
const SheetID = "1ZvtWd8zHMI0k2GQGMWhtFHl5xuDbciOW"

// Players is the league roster in registration order.
var Players = []string{
	"刘北南", "Jacky", "赵鲲", "杨子初", "Neo", "徐峥",
	"杨明", "曹振波", "李扬", "王文龙", "曾诚", "Justin",
}

// Tournament describes one cup on the season calendar.
type Tournament struct {
	Name   string   `json:"name"`
	Period string   `json:"period"`
	Games  []string `json:"games"`
}

// Tournaments lists the season calendar in playing order.
var Tournaments = []Tournament{
	{Name: "提提卡卡杯", Period: "01/04 - 31/05", Games: []string{"Game 1", "Game 2", "Game 3", "Game 4"}},
	{Name: "暖男杯", Period: "01/06 - 31/07", Games: []string{"Game 5", "Game 6", "Game 7", "Game 8"}},
	{Name: "凯尔特人杯", Period: "01/08 - 15/09", Games: []string{"Game 9", "Game 10", "Game 11", "Game 12"}},
}

// TournamentByName looks up a calendar entry by its exact name.
func TournamentByName(name string) (Tournament, bool) {
	for _, t := range Tournaments {
		if t.Name == name {
			return t, true
		}
	}
	return Tournament{}, false
}

// TournamentNames returns the cup names in playing order.
func TournamentNames() []string {
	names := make([]string, len(Tournaments))
	for i, t := range Tournaments {
		names[i] = t.Name
	}
	return names
}
