package playoff

import (
	"fmt"

	"github.com/reallyasi9/playoff-picture/internal/nfl"
)

func team(abbr string, div nfl.Division, w, l int) nfl.Team {
	conf := nfl.AFC
	if len(div) >= 3 && div[:3] == "NFC" {
		conf = nfl.NFC
	}
	return nfl.Team{
		Abbr:       abbr,
		Name:       abbr,
		Conference: conf,
		Division:   div,
		Wins:       w,
		Losses:     l,
	}
}

func finalGame(id string, home, away, winner string) nfl.Game {
	return nfl.Game{ID: id, Week: 1, Home: home, Away: away, Status: nfl.Final, Winner: winner}
}

func upcomingGame(id string, home, away string) nfl.Game {
	return nfl.Game{ID: id, Week: 18, Home: home, Away: away, Status: nfl.Scheduled}
}

// afcTeams is a full 16-team conference with distinct records. KC leads the
// conference; HOU sits in 7th place with 9 wins.
func afcTeams() []nfl.Team {
	return []nfl.Team{
		team("BUF", "AFC East", 11, 2),
		team("MIA", "AFC East", 10, 3),
		team("NE", "AFC East", 9, 4),
		team("NYJ", "AFC East", 4, 9),
		team("BAL", "AFC North", 10, 3),
		team("CIN", "AFC North", 9, 4),
		team("CLE", "AFC North", 8, 5),
		team("PIT", "AFC North", 7, 6),
		team("HOU", "AFC South", 9, 4),
		team("IND", "AFC South", 8, 5),
		team("JAX", "AFC South", 3, 10),
		team("TEN", "AFC South", 2, 11),
		team("KC", "AFC West", 12, 1),
		team("LAC", "AFC West", 8, 5),
		team("DEN", "AFC West", 6, 7),
		team("LV", "AFC West", 5, 8),
	}
}

func afcStandings() *nfl.Standings {
	return nfl.NewStandings(afcTeams())
}

// twoDivisionTeams is a small 8-team conference for search tests.
func twoDivisionTeams() []nfl.Team {
	return []nfl.Team{
		team("BUF", "AFC East", 8, 5),
		team("MIA", "AFC East", 7, 6),
		team("NE", "AFC East", 6, 7),
		team("NYJ", "AFC East", 5, 8),
		team("BAL", "AFC North", 9, 4),
		team("CIN", "AFC North", 7, 6),
		team("CLE", "AFC North", 6, 7),
		team("PIT", "AFC North", 5, 8),
	}
}

func mustSession(standings *nfl.Standings, schedule nfl.Schedule, target string) *Session {
	s, err := NewSession(standings, schedule, target, nil)
	if err != nil {
		panic(fmt.Sprintf("session for %s: %v", target, err))
	}
	return s
}
