package playoff

import (
	"testing"

	"github.com/reallyasi9/playoff-picture/internal/nfl"
)

// scenarioStandings is an 8-team conference where the target (TEN, 4-8)
// trails IND (9-3) and HOU (6-6) in its division.
func scenarioStandings() *nfl.Standings {
	return nfl.NewStandings([]nfl.Team{
		team("IND", "AFC South", 9, 3),
		team("HOU", "AFC South", 6, 6),
		team("TEN", "AFC South", 4, 8),
		team("JAX", "AFC South", 3, 9),
		team("BUF", "AFC East", 10, 2),
		team("MIA", "AFC East", 7, 5),
		team("NE", "AFC East", 5, 7),
		team("NYJ", "AFC East", 4, 8),
	})
}

func TestSimulateImprovesDivisionRank(t *testing.T) {
	standings := scenarioStandings()
	schedule := nfl.Schedule{
		upcomingGame("t1", "TEN", "IND"), // target wins
		upcomingGame("t2", "HOU", "TEN"), // target wins
		upcomingGame("t3", "TEN", "JAX"), // target wins
		upcomingGame("r1", "MIA", "IND"), // rival IND loses
		upcomingGame("r2", "NE", "HOU"),  // rival HOU loses
	}
	session := mustSession(standings, schedule, "TEN")

	if got := len(session.CriticalGames()); got != 5 {
		t.Fatalf("critical games = %d, want 5", got)
	}

	before := session.Simulate(nil)
	after := session.Simulate(Outcomes{
		"t1": SideHome,
		"t2": SideAway,
		"t3": SideHome,
		"r1": SideHome,
		"r2": SideHome,
	})

	if after.DivisionRank >= before.DivisionRank {
		t.Errorf("division rank did not improve: before %d, after %d", before.DivisionRank, after.DivisionRank)
	}

	ten, _ := after.Standings.Team("TEN")
	if ten.Wins != 4+3 {
		t.Errorf("TEN final wins = %d, want 7", ten.Wins)
	}
	ind, _ := after.Standings.Team("IND")
	if ind.Wins != 9 || ind.Losses != 3+2 {
		t.Errorf("IND final record = %s, want 9-5", ind.Record())
	}
}

func TestSimulateLeavesCanonicalStandingsAlone(t *testing.T) {
	standings := scenarioStandings()
	schedule := nfl.Schedule{upcomingGame("t1", "TEN", "IND")}
	session := mustSession(standings, schedule, "TEN")

	session.Simulate(Outcomes{"t1": SideHome})

	ten, _ := standings.Team("TEN")
	if ten.Wins != 4 {
		t.Errorf("canonical standings mutated: TEN wins = %d, want 4", ten.Wins)
	}
}

func TestSimulateLockedOutcomesWin(t *testing.T) {
	standings := scenarioStandings()
	schedule := nfl.Schedule{upcomingGame("t1", "TEN", "IND")}
	session := mustSession(standings, schedule, "TEN")
	if err := session.LockOutcome("t1", SideHome); err != nil {
		t.Fatal(err)
	}

	// A generated outcome for the same game must not override the lock.
	res := session.Simulate(Outcomes{"t1": SideAway})
	ten, _ := res.Standings.Team("TEN")
	if ten.Wins != 5 {
		t.Errorf("TEN wins = %d, want 5 (locked home win)", ten.Wins)
	}
}

func TestSimulateSeedAndWildcardRank(t *testing.T) {
	standings := scenarioStandings()
	session := mustSession(standings, nfl.Schedule{}, "BUF")

	res := session.Simulate(nil)
	if !res.MadePlayoffs {
		t.Fatal("BUF should make the playoffs")
	}
	if res.Seed != 1 {
		t.Errorf("BUF seed = %d, want 1", res.Seed)
	}
	if res.WildcardRank != 0 {
		t.Errorf("division winner wildcard rank = %d, want 0", res.WildcardRank)
	}

	if err := session.SetTarget("MIA"); err != nil {
		t.Fatal(err)
	}
	res = session.Simulate(nil)
	if !res.MadePlayoffs {
		t.Fatal("MIA should take a wildcard slot")
	}
	if res.WildcardRank != 1 {
		t.Errorf("MIA wildcard rank = %d, want 1", res.WildcardRank)
	}

	if err := session.SetTarget("NYJ"); err != nil {
		t.Fatal(err)
	}
	res = session.Simulate(nil)
	if res.MadePlayoffs {
		t.Fatal("NYJ should miss")
	}
	if res.Seed != 0 {
		t.Errorf("missed target seed = %d, want 0", res.Seed)
	}
	if res.DivisionRank != 4 {
		t.Errorf("NYJ division rank = %d, want 4", res.DivisionRank)
	}
}
