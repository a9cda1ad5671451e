package playoff

import (
	"math/rand"

	"github.com/segmentio/fasthash/jody"
)

// ExhaustiveSearchLimit is the largest number of undecided games searched by
// full enumeration. Beyond it the 2^N space is infeasible and the search
// falls back to biased sampling.
const ExhaustiveSearchLimit = 14

// DefaultHeuristicTrials is the sample count per biased strategy when the
// search falls back to heuristics.
const DefaultHeuristicTrials = 5000

// Pick is one generated outcome in a search result.
type Pick struct {
	Game   CriticalGame
	Side   Side
	Winner string
}

// SearchResult is the extremal outcome assignment a search found.
type SearchResult struct {
	// Outcomes is the full assignment, locked entries included.
	Outcomes Outcomes
	// Picks lists the games the search itself decided, in critical order.
	// These are the games that must go this way.
	Picks []Pick
	// Result is the target team's fate under the assignment.
	Result ScenarioResult
	// Exhaustive reports whether the full outcome space was enumerated.
	// Heuristic results are a good-effort approximation, not guaranteed
	// optimal.
	Exhaustive bool
}

// SearchBest finds the outcome assignment most favorable to the target team,
// subject to the locked outcomes.
func (s *Session) SearchBest(seed int64) SearchResult {
	return s.search(false, seed)
}

// SearchWorst finds the outcome assignment least favorable to the target
// team, subject to the locked outcomes.
func (s *Session) SearchWorst(seed int64) SearchResult {
	return s.search(true, seed)
}

func (s *Session) search(worst bool, seed int64) SearchResult {
	undecided := s.undecided()
	if len(undecided) <= ExhaustiveSearchLimit {
		return s.searchExhaustive(undecided, worst)
	}
	return s.searchHeuristic(undecided, worst, seed)
}

// searchExhaustive enumerates every binary assignment over the undecided
// games. Bit i of the mask picks the home side of game i.
func (s *Session) searchExhaustive(undecided []CriticalGame, worst bool) SearchResult {
	outcomes := make(Outcomes, len(undecided))
	var best SearchResult
	found := false

	for mask := 0; mask < 1<<len(undecided); mask++ {
		for i, cg := range undecided {
			if mask&(1<<i) != 0 {
				outcomes[cg.ID] = SideHome
			} else {
				outcomes[cg.ID] = SideAway
			}
		}
		res := s.Simulate(outcomes)
		if !found || favors(res, best.Result, worst) {
			found = true
			best = s.newSearchResult(undecided, outcomes, res)
			best.Exhaustive = true
		}
	}
	return best
}

// searchHeuristic samples biased assignments: the target wins (or, for the
// worst case, loses) its own games, division rivals are pushed the other
// way, and everything else is random. Already-seen assignments are hashed
// and skipped rather than re-simulated.
func (s *Session) searchHeuristic(undecided []CriticalGame, worst bool, seed int64) SearchResult {
	rng := rand.New(rand.NewSource(seed))
	visited := make(map[uint64]bool)
	outcomes := make(Outcomes, len(undecided))
	sides := make([]Side, len(undecided))

	var best SearchResult
	found := false

	for trial := 0; trial < DefaultHeuristicTrials; trial++ {
		for i, cg := range undecided {
			sides[i] = s.biasedSide(cg, worst, rng)
			outcomes[cg.ID] = sides[i]
		}
		h := hashSides(sides)
		if visited[h] {
			continue
		}
		visited[h] = true

		res := s.Simulate(outcomes)
		if !found || favors(res, best.Result, worst) {
			found = true
			best = s.newSearchResult(undecided, outcomes, res)
		}
	}
	return best
}

// biasedSide picks a winner for one game under the search's bias: in the
// best case the target wins its own games and division rivals lose; in the
// worst case the reverse.
func (s *Session) biasedSide(cg CriticalGame, worst bool, rng *rand.Rand) Side {
	targetHome := cg.Home == s.target.Abbr
	targetAway := cg.Away == s.target.Abbr
	if targetHome || targetAway {
		win := SideHome
		if targetAway {
			win = SideAway
		}
		if worst {
			return otherSide(win)
		}
		return win
	}

	home, homeOK := s.standings.Team(cg.Home)
	away, awayOK := s.standings.Team(cg.Away)
	homeRival := homeOK && home.Division == s.target.Division
	awayRival := awayOK && away.Division == s.target.Division
	if homeRival != awayRival {
		// Push the lone rival to lose (best) or win (worst).
		rivalWins := SideHome
		if awayRival {
			rivalWins = SideAway
		}
		if worst {
			return rivalWins
		}
		return otherSide(rivalWins)
	}

	if rng.Float64() < 0.5 {
		return SideHome
	}
	return SideAway
}

func otherSide(side Side) Side {
	if side == SideHome {
		return SideAway
	}
	return SideHome
}

func hashSides(sides []Side) uint64 {
	h := jody.HashUint64(uint64(len(sides)))
	for _, side := range sides {
		bit := uint64(0)
		if side == SideHome {
			bit = 1
		}
		h = jody.AddUint64(h, bit)
	}
	return h
}

func (s *Session) newSearchResult(undecided []CriticalGame, outcomes Outcomes, res ScenarioResult) SearchResult {
	full := outcomes.Clone()
	for id, side := range s.locked {
		full[id] = side
	}
	picks := make([]Pick, len(undecided))
	for i, cg := range undecided {
		side := outcomes[cg.ID]
		winner := cg.Home
		if side == SideAway {
			winner = cg.Away
		}
		picks[i] = Pick{Game: cg, Side: side, Winner: winner}
	}
	return SearchResult{Outcomes: full, Picks: picks, Result: res}
}

// favors reports whether a beats b from the search's point of view: making
// the playoffs beats missing, a lower seed is better, and between two misses
// a better division or wildcard rank is better. The worst-case search wants
// the exact opposite.
func favors(a, b ScenarioResult, worst bool) bool {
	c := compareScenarios(a, b)
	if worst {
		return c < 0
	}
	return c > 0
}

// compareScenarios returns >0 when a is the better fate for the target.
func compareScenarios(a, b ScenarioResult) int {
	switch {
	case a.MadePlayoffs && !b.MadePlayoffs:
		return 1
	case !a.MadePlayoffs && b.MadePlayoffs:
		return -1
	case a.MadePlayoffs:
		return b.Seed - a.Seed
	}
	if a.DivisionRank != b.DivisionRank {
		return b.DivisionRank - a.DivisionRank
	}
	return b.WildcardRank - a.WildcardRank
}
