package playoff

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reallyasi9/playoff-picture/internal/nfl"
)

func TestNewSessionUnknownTarget(t *testing.T) {
	if _, err := NewSession(afcStandings(), nil, "XXX", nil); err == nil {
		t.Error("expected error for a target not in the standings")
	}
}

func TestLockOutcomeValidation(t *testing.T) {
	standings := scenarioStandings()
	schedule := nfl.Schedule{upcomingGame("t1", "TEN", "IND")}
	session := mustSession(standings, schedule, "TEN")

	if err := session.LockOutcome("nope", SideHome); err == nil {
		t.Error("expected error for a non-critical game")
	}
	if err := session.LockOutcome("t1", Side("sideways")); err == nil {
		t.Error("expected error for an invalid side")
	}
	if err := session.LockOutcome("t1", SideAway); err != nil {
		t.Fatal(err)
	}
	if got := session.LockedOutcomes()["t1"]; got != SideAway {
		t.Errorf("locked side = %q, want away", got)
	}

	// LockedOutcomes returns a copy; mutating it must not touch the session.
	session.LockedOutcomes()["t1"] = SideHome
	if got := session.LockedOutcomes()["t1"]; got != SideAway {
		t.Error("LockedOutcomes copy leaked back into the session")
	}

	session.UnlockOutcome("t1")
	if len(session.LockedOutcomes()) != 0 {
		t.Error("unlock left outcomes behind")
	}
}

func TestClearOutcomes(t *testing.T) {
	standings := scenarioStandings()
	schedule := nfl.Schedule{
		upcomingGame("t1", "TEN", "IND"),
		upcomingGame("t2", "HOU", "TEN"),
	}
	session := mustSession(standings, schedule, "TEN")
	session.LockOutcome("t1", SideHome)
	session.LockOutcome("t2", SideAway)

	session.ClearOutcomes()
	if len(session.LockedOutcomes()) != 0 {
		t.Error("ClearOutcomes left locked games behind")
	}
}

func TestSetTargetRefiltersAndPrunes(t *testing.T) {
	standings := scenarioStandings()
	schedule := nfl.Schedule{
		upcomingGame("t1", "TEN", "JAX"),  // TEN game: critical only for South targets
		upcomingGame("e1", "BUF", "MIA"),  // East division game
		upcomingGame("x1", "NYJ", "JAX"),  // cross-division
	}
	session := mustSession(standings, schedule, "TEN")
	if err := session.LockOutcome("t1", SideHome); err != nil {
		t.Fatal(err)
	}

	if err := session.SetTarget("BUF"); err != nil {
		t.Fatal(err)
	}
	if session.Target().Abbr != "BUF" {
		t.Fatalf("target = %s, want BUF", session.Target().Abbr)
	}

	ids := make(map[string]bool)
	for _, cg := range session.CriticalGames() {
		ids[cg.ID] = true
	}
	if !ids["e1"] {
		t.Error("BUF's division game should be critical after retargeting")
	}

	// t1 (TEN vs JAX) stays critical for BUF only via the contender rule;
	// either way the locked set must only reference critical games.
	for id := range session.LockedOutcomes() {
		if !ids[id] {
			t.Errorf("locked outcome %q references a non-critical game", id)
		}
	}

	if _, err := NewSession(standings, schedule, "TEN", nil); err != nil {
		t.Fatal(err)
	}
	if err := session.SetTarget("XXX"); err == nil {
		t.Error("expected error for an unknown retarget")
	}
}

func TestConferenceSeedingIdempotent(t *testing.T) {
	standings := afcStandings()
	session := mustSession(standings, nil, "BUF")

	first := session.ConferenceSeeding()
	second := session.ConferenceSeeding()
	if len(first) != 7 {
		t.Fatalf("seeding has %d slots, want 7", len(first))
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated seeding disagrees (-first +second):\n%s", diff)
	}
}

func TestSessionDefaultsToCoinFlip(t *testing.T) {
	session := mustSession(afcStandings(), nil, "BUF")
	res := session.RunMonteCarlo(10, 1)
	if res.Trials != 10 {
		t.Errorf("trials = %d, want 10", res.Trials)
	}
	session.SetModel(nil)
	if session.model == nil {
		t.Error("nil model must fall back to a coin flip")
	}
}
