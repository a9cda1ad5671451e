package playoff

import (
	"fmt"

	"github.com/reallyasi9/playoff-picture/internal/nfl"
)

// winPctEpsilon is the tolerance for win-percentage equality.
// Win percentages are ratios of small integers computed in floating point, so
// values that should be identical can differ in the last few bits; anything
// closer than this is treated as a tie and falls through to the next
// tiebreaker.
const winPctEpsilon = 1e-4

// Record is a win-loss-tie tally.
type Record struct {
	Wins   int
	Losses int
	Ties   int
}

// Games returns the number of games in the record.
func (r Record) Games() int {
	return r.Wins + r.Losses + r.Ties
}

// WinPct returns the record's win percentage with ties counted as half-wins.
// An empty record has a win percentage of 0; callers treat zero-game records
// as inconclusive rather than as losses.
func (r Record) WinPct() float64 {
	n := r.Games()
	if n == 0 {
		return 0
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(n)
}

func (r Record) String() string {
	if r.Ties > 0 {
		return fmt.Sprintf("%d-%d-%d", r.Wins, r.Losses, r.Ties)
	}
	return fmt.Sprintf("%d-%d", r.Wins, r.Losses)
}

// pairKey is a directional team-pair key: the record of Team with respect to
// Opponent. A composite key avoids the formatting and directionality bugs of
// string-concatenated pair keys.
type pairKey struct {
	Team     string
	Opponent string
}

// TiebreakRecords holds the per-team and per-pair aggregates the seeding
// cascade consults. Derived once per season from completed games and
// read-only for the duration of a calculation pass.
type TiebreakRecords struct {
	conference  map[string]Record
	division    map[string]Record
	headToHead  map[pairKey]Record
	commonGames map[pairKey]Record
}

// MakeTiebreakRecords computes all four aggregate maps from the completed
// games in the schedule. Games referencing teams absent from the standings
// are skipped.
func MakeTiebreakRecords(standings *nfl.Standings, schedule nfl.Schedule) *TiebreakRecords {
	r := &TiebreakRecords{
		conference:  make(map[string]Record),
		division:    make(map[string]Record),
		headToHead:  make(map[pairKey]Record),
		commonGames: make(map[pairKey]Record),
	}

	for _, g := range schedule.Completed() {
		home, ok := standings.Team(g.Home)
		if !ok {
			continue
		}
		away, ok := standings.Team(g.Away)
		if !ok {
			continue
		}

		r.addPair(g, g.Home, g.Away)
		r.addPair(g, g.Away, g.Home)

		if home.Conference == away.Conference {
			r.addScoped(r.conference, g, g.Home, g.Away)
			if home.Division == away.Division {
				r.addScoped(r.division, g, g.Home, g.Away)
			}
		}
	}

	r.buildCommonGames(standings)

	return r
}

func (r *TiebreakRecords) addPair(g nfl.Game, team, opp string) {
	k := pairKey{Team: team, Opponent: opp}
	rec := r.headToHead[k]
	switch {
	case g.Tied():
		rec.Ties++
	case g.Winner == team:
		rec.Wins++
	default:
		rec.Losses++
	}
	r.headToHead[k] = rec
}

func (r *TiebreakRecords) addScoped(m map[string]Record, g nfl.Game, home, away string) {
	hr := m[home]
	ar := m[away]
	switch {
	case g.Tied():
		hr.Ties++
		ar.Ties++
	case g.Winner == home:
		hr.Wins++
		ar.Losses++
	default:
		hr.Losses++
		ar.Wins++
	}
	m[home] = hr
	m[away] = ar
}

// buildCommonGames accumulates, for every same-division pair, each team's
// record against the opponents both teams have played (excluding each other).
func (r *TiebreakRecords) buildCommonGames(standings *nfl.Standings) {
	// Opponent sets come straight out of the pairwise records.
	opponents := make(map[string]map[string]bool)
	for k := range r.headToHead {
		if opponents[k.Team] == nil {
			opponents[k.Team] = make(map[string]bool)
		}
		opponents[k.Team][k.Opponent] = true
	}

	teams := standings.Teams()
	for _, a := range teams {
		for _, b := range teams {
			if a.Abbr == b.Abbr || a.Division != b.Division {
				continue
			}
			var rec Record
			for opp := range opponents[a.Abbr] {
				if opp == b.Abbr || !opponents[b.Abbr][opp] {
					continue
				}
				vs := r.headToHead[pairKey{Team: a.Abbr, Opponent: opp}]
				rec.Wins += vs.Wins
				rec.Losses += vs.Losses
				rec.Ties += vs.Ties
			}
			r.commonGames[pairKey{Team: a.Abbr, Opponent: b.Abbr}] = rec
		}
	}
}

// ConferenceRecord returns the team's record in intra-conference games.
// Absent teams (and a nil receiver) get a zero-game record, which every
// consumer treats as inconclusive.
func (r *TiebreakRecords) ConferenceRecord(abbr string) Record {
	if r == nil {
		return Record{}
	}
	return r.conference[abbr]
}

// DivisionRecord returns the team's record in intra-division games.
func (r *TiebreakRecords) DivisionRecord(abbr string) Record {
	if r == nil {
		return Record{}
	}
	return r.division[abbr]
}

// HeadToHead returns team's record in direct matchups against opp.
// A zero-game record means the teams have not played.
func (r *TiebreakRecords) HeadToHead(team, opp string) Record {
	if r == nil {
		return Record{}
	}
	return r.headToHead[pairKey{Team: team, Opponent: opp}]
}

// CommonGames returns team's record against the opponents shared with opp.
// Only populated for same-division pairs.
func (r *TiebreakRecords) CommonGames(team, opp string) Record {
	if r == nil {
		return Record{}
	}
	return r.commonGames[pairKey{Team: team, Opponent: opp}]
}
