package playoff

import (
	"sort"

	"github.com/reallyasi9/playoff-picture/internal/nfl"
)

// Impact scores for critical games.
const (
	// ImpactTarget marks games the target team plays in.
	ImpactTarget = 100
	// ImpactDivision marks games between two of the target's division rivals.
	ImpactDivision = 80
	// ImpactMixed marks games between a division rival and another
	// conference team.
	ImpactMixed = 60
	// ImpactContenders marks games between two wildcard contenders outside
	// the target's division.
	ImpactContenders = 40
)

// contenderWinMargin is how many wins behind the current 7 seed a team can be
// and still count as a wildcard contender.
const contenderWinMargin = 3

// CriticalGame is a remaining game whose outcome can affect the target
// team's seeding, scored by how directly it matters.
type CriticalGame struct {
	nfl.Game
	Impact int
	Label  string
}

// ImpactLabel names an impact score.
func ImpactLabel(score int) string {
	switch {
	case score >= ImpactTarget:
		return "Critical"
	case score >= ImpactDivision:
		return "High"
	case score >= ImpactContenders:
		return "Medium"
	default:
		return "Low"
	}
}

// FilterCriticalGames reduces the remaining schedule to the games that can
// affect the target team, highest impact first. Games with neither side in
// the target's conference are excluded, as are games that match no scoring
// rule. Ties in impact keep schedule order.
func FilterCriticalGames(target *nfl.Team, standings *nfl.Standings, schedule nfl.Schedule) []CriticalGame {
	contenderFloor := wildcardContenderFloor(target.Conference, standings)

	out := make([]CriticalGame, 0, len(schedule))
	for _, g := range schedule.Remaining() {
		home, homeOK := standings.Team(g.Home)
		away, awayOK := standings.Team(g.Away)

		score := 0
		switch {
		case g.Involves(target.Abbr):
			score = ImpactTarget
		case !homeOK || !awayOK:
			// Unknown team on either side: nothing to reason about.
		case inDivision(home, target) && inDivision(away, target):
			score = ImpactDivision
		case inDivision(home, target) && inConference(away, target),
			inDivision(away, target) && inConference(home, target):
			score = ImpactMixed
		case isContender(home, target, contenderFloor) && isContender(away, target, contenderFloor):
			score = ImpactContenders
		}
		if score == 0 {
			continue
		}
		out = append(out, CriticalGame{Game: g, Impact: score, Label: ImpactLabel(score)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Impact > out[j].Impact
	})
	return out
}

func inConference(t, target *nfl.Team) bool {
	return t.Conference == target.Conference
}

func inDivision(t, target *nfl.Team) bool {
	return t.Division == target.Division
}

// isContender reports whether t is a wildcard contender: in the target's
// conference and within contenderWinMargin wins of the current 7 seed.
func isContender(t, target *nfl.Team, floor int) bool {
	return t.Conference == target.Conference && t.Wins >= floor
}

// wildcardContenderFloor returns the minimum win count to be considered a
// wildcard contender, derived from the team currently in 7th place
// conference-wide by win percentage.
func wildcardContenderFloor(c nfl.Conference, standings *nfl.Standings) int {
	teams := standings.Conference(c)
	ranked := make([]*nfl.Team, len(teams))
	copy(ranked, teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].WinPct() > ranked[j].WinPct()
	})
	if len(ranked) < 7 {
		return 0
	}
	return ranked[6].Wins - contenderWinMargin
}
