package playoff

import (
	"fmt"

	"github.com/reallyasi9/playoff-picture/internal/nfl"
)

// Session holds everything one calculation pass needs: the target team, the
// standings snapshot, tiebreak records, the critical-game list, and the
// user's locked outcomes. Sessions carry no global state, so several can run
// side by side over the same standings.
type Session struct {
	target    *nfl.Team
	standings *nfl.Standings
	schedule  nfl.Schedule
	records   *TiebreakRecords
	critical  []CriticalGame
	locked    Outcomes
	model     WinModel
}

// NewSession builds a session for the given target team. The schedule should
// hold the season's games, completed and remaining: completed games feed the
// tiebreak records, remaining games feed the critical-game filter.
//
// A target absent from the standings is a precondition violation and fails
// immediately.
func NewSession(standings *nfl.Standings, schedule nfl.Schedule, targetAbbr string, model WinModel) (*Session, error) {
	target, ok := standings.Team(targetAbbr)
	if !ok {
		return nil, fmt.Errorf("target team %q not in standings", targetAbbr)
	}
	if model == nil {
		model = CoinFlip{}
	}

	s := &Session{
		target:    target,
		standings: standings,
		schedule:  schedule,
		records:   MakeTiebreakRecords(standings, schedule),
		locked:    make(Outcomes),
		model:     model,
	}
	s.critical = FilterCriticalGames(target, standings, schedule)
	return s, nil
}

// Target returns the team being analyzed.
func (s *Session) Target() *nfl.Team {
	return s.target
}

// CriticalGames returns the filtered game list, highest impact first.
func (s *Session) CriticalGames() []CriticalGame {
	return s.critical
}

// Records returns the season's tiebreak records.
func (s *Session) Records() *TiebreakRecords {
	return s.records
}

// SetTarget switches the team being analyzed, re-filters the critical games,
// and prunes locked outcomes for games that are no longer critical.
func (s *Session) SetTarget(abbr string) error {
	target, ok := s.standings.Team(abbr)
	if !ok {
		return fmt.Errorf("target team %q not in standings", abbr)
	}
	s.target = target
	s.critical = FilterCriticalGames(target, s.standings, s.schedule)

	stillCritical := make(map[string]bool, len(s.critical))
	for _, cg := range s.critical {
		stillCritical[cg.ID] = true
	}
	for id := range s.locked {
		if !stillCritical[id] {
			delete(s.locked, id)
		}
	}
	return nil
}

// LockOutcome fixes a critical game's winner. Locked outcomes persist across
// recalculation and are never overwritten by simulation or search.
func (s *Session) LockOutcome(gameID string, side Side) error {
	if side != SideHome && side != SideAway {
		return fmt.Errorf("invalid side %q", side)
	}
	for _, cg := range s.critical {
		if cg.ID == gameID {
			s.locked[gameID] = side
			return nil
		}
	}
	return fmt.Errorf("game %q is not a critical game", gameID)
}

// UnlockOutcome releases a locked game back to simulation.
func (s *Session) UnlockOutcome(gameID string) {
	delete(s.locked, gameID)
}

// ClearOutcomes releases every locked game.
func (s *Session) ClearOutcomes() {
	s.locked = make(Outcomes)
}

// LockedOutcomes returns a copy of the user's locked outcomes.
func (s *Session) LockedOutcomes() Outcomes {
	return s.locked.Clone()
}

// SetModel switches the win model used for weighted sampling.
func (s *Session) SetModel(m WinModel) {
	if m == nil {
		m = CoinFlip{}
	}
	s.model = m
}

// ConferenceSeeding returns the target conference's current seven playoff
// slots with no hypothetical outcomes applied.
func (s *Session) ConferenceSeeding() []PlayoffTeam {
	return ResolveSeeding(s.standings.Conference(s.target.Conference), s.records)
}

// undecided returns the critical games with no locked outcome, in critical
// order.
func (s *Session) undecided() []CriticalGame {
	out := make([]CriticalGame, 0, len(s.critical))
	for _, cg := range s.critical {
		if _, ok := s.locked[cg.ID]; !ok {
			out = append(out, cg)
		}
	}
	return out
}

// homeWinProbability looks up both teams and asks the session's model.
func (s *Session) homeWinProbability(g nfl.Game) float64 {
	home, _ := s.standings.Team(g.Home)
	away, _ := s.standings.Team(g.Away)
	return s.model.HomeWinProbability(home, away)
}
