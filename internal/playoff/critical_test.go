package playoff

import (
	"testing"

	"github.com/reallyasi9/playoff-picture/internal/nfl"
)

func criticalTestStandings() *nfl.Standings {
	teams := afcTeams()
	teams = append(teams,
		team("DAL", "NFC East", 9, 4),
		team("PHI", "NFC East", 9, 4),
	)
	return nfl.NewStandings(teams)
}

func TestFilterCriticalGames(t *testing.T) {
	standings := criticalTestStandings()
	target, _ := standings.Team("BUF")

	// With HOU (9 wins) in 7th place conference-wide, the contender floor
	// is 6 wins: LV (5) and below are out of the race.
	schedule := nfl.Schedule{
		upcomingGame("g1", "KC", "CIN"),  // two contenders outside the division
		upcomingGame("g2", "DAL", "BUF"), // target plays, even out of conference
		upcomingGame("g3", "MIA", "NE"),  // both in the target's division
		upcomingGame("g4", "NYJ", "BAL"), // division rival vs conference team
		upcomingGame("g5", "DAL", "PHI"), // no conference team: excluded
		upcomingGame("g6", "LV", "TEN"),  // non-contenders: excluded
		finalGame("g7", "BUF", "MIA", "BUF"), // already played: excluded
	}

	games := FilterCriticalGames(target, standings, schedule)

	want := []struct {
		id     string
		impact int
		label  string
	}{
		{"g2", 100, "Critical"},
		{"g3", 80, "High"},
		{"g4", 60, "Medium"},
		{"g1", 40, "Medium"},
	}
	if len(games) != len(want) {
		ids := make([]string, len(games))
		for i, g := range games {
			ids[i] = g.ID
		}
		t.Fatalf("got %d critical games %v, want %d", len(games), ids, len(want))
	}
	for i, w := range want {
		g := games[i]
		if g.ID != w.id || g.Impact != w.impact || g.Label != w.label {
			t.Errorf("game %d = %s/%d/%s, want %s/%d/%s", i, g.ID, g.Impact, g.Label, w.id, w.impact, w.label)
		}
	}
}

func TestFilterCriticalGamesStableWithinImpact(t *testing.T) {
	standings := criticalTestStandings()
	target, _ := standings.Team("BUF")

	schedule := nfl.Schedule{
		upcomingGame("a", "MIA", "NE"),
		upcomingGame("b", "NE", "NYJ"),
		upcomingGame("c", "MIA", "NYJ"),
	}
	games := FilterCriticalGames(target, standings, schedule)
	if len(games) != 3 {
		t.Fatalf("got %d games, want 3", len(games))
	}
	for i, id := range []string{"a", "b", "c"} {
		if games[i].ID != id {
			t.Errorf("game %d = %s, want %s (discovery order)", i, games[i].ID, id)
		}
	}
}

func TestImpactLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Critical"},
		{80, "High"},
		{60, "Medium"},
		{40, "Medium"},
		{20, "Low"},
	}
	for _, tt := range tests {
		if got := ImpactLabel(tt.score); got != tt.want {
			t.Errorf("ImpactLabel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
