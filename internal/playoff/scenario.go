package playoff

import (
	"sort"

	"github.com/reallyasi9/playoff-picture/internal/nfl"
)

// Side identifies the winning side of a hypothetical outcome.
type Side string

const (
	// SideHome picks the home team to win.
	SideHome Side = "home"
	// SideAway picks the away team to win.
	SideAway Side = "away"
)

// Outcomes maps game IDs to the side picked to win. User-locked entries and
// simulation-generated entries use the same shape; locked entries are never
// overwritten by simulation.
type Outcomes map[string]Side

// Clone returns an independent copy.
func (o Outcomes) Clone() Outcomes {
	out := make(Outcomes, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// ScenarioResult is the target team's fate under one outcome assignment.
type ScenarioResult struct {
	// Standings is the hypothetical end state after applying the outcomes.
	Standings *nfl.Standings
	// Seeding is the target conference's seven playoff slots.
	Seeding []PlayoffTeam
	// MadePlayoffs reports whether the target earned a seed.
	MadePlayoffs bool
	// Seed is the target's seed, or 0 on a miss.
	Seed int
	// DivisionRank is the target's place in its division, 1-based.
	DivisionRank int
	// WildcardRank is the target's place among the conference's
	// non-division-winners, 1-based; 0 when the target won its division.
	WildcardRank int
}

// Simulate applies an outcome assignment on top of the session's locked
// outcomes and reports the target team's fate. The canonical standings are
// untouched; all mutation happens on a clone.
//
// Division and wildcard ranks intentionally use a plain wins-then-losses
// sort instead of the full tiebreaker cascade: they exist to report how
// close a miss was, not to re-litigate seeding.
func (s *Session) Simulate(generated Outcomes) ScenarioResult {
	outcomes := generated.Clone()
	for id, side := range s.locked {
		outcomes[id] = side
	}

	standings := s.standings.Clone()
	for _, cg := range s.critical {
		side, ok := outcomes[cg.ID]
		if !ok {
			continue
		}
		winner, loser := cg.Home, cg.Away
		if side == SideAway {
			winner, loser = cg.Away, cg.Home
		}
		standings.ApplyResult(winner, loser)
	}

	target, _ := standings.Team(s.target.Abbr)
	conference := standings.Conference(target.Conference)
	seeding := ResolveSeeding(conference, s.records)

	result := ScenarioResult{
		Standings:    standings,
		Seeding:      seeding,
		DivisionRank: rankAmong(standings.Division(target.Division), target),
	}

	for _, pt := range seeding {
		if pt.Abbr == target.Abbr {
			result.MadePlayoffs = true
			result.Seed = pt.Seed
			break
		}
	}

	divisionWinners := make(map[string]bool, 4)
	for _, pt := range seeding {
		if pt.DivisionWinner {
			divisionWinners[pt.Abbr] = true
		}
	}
	if !divisionWinners[target.Abbr] {
		pool := make([]*nfl.Team, 0, len(conference))
		for _, t := range conference {
			if !divisionWinners[t.Abbr] {
				pool = append(pool, t)
			}
		}
		result.WildcardRank = rankAmong(pool, target)
	}

	return result
}

// rankAmong returns target's 1-based position in the group under the
// simplified ordering: win percentage, then raw wins, then fewest losses.
func rankAmong(group []*nfl.Team, target *nfl.Team) int {
	ranked := make([]*nfl.Team, len(group))
	copy(ranked, group)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.WinPct() != b.WinPct() {
			return a.WinPct() > b.WinPct()
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.Losses < b.Losses
	})
	for i, t := range ranked {
		if t.Abbr == target.Abbr {
			return i + 1
		}
	}
	return 0
}
