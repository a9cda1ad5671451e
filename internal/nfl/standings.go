package nfl

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Standings is a snapshot of every team's record.
// The canonical standings are immutable input; scenario work operates on a
// Clone and mutates only the copy.
type Standings struct {
	teams []*Team
	index map[string]*Team
}

// NewStandings builds standings from a list of teams.
// Teams keep their given order, which is the deterministic fallback order
// when every tiebreaker is inconclusive.
func NewStandings(teams []Team) *Standings {
	s := &Standings{
		teams: make([]*Team, len(teams)),
		index: make(map[string]*Team, len(teams)),
	}
	for i := range teams {
		t := teams[i]
		s.teams[i] = &t
		s.index[t.Abbr] = s.teams[i]
	}
	return s
}

// MakeStandings parses a standings YAML file.
func MakeStandings(fileName string) (*Standings, error) {
	raw, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	var teams []Team
	if err := yaml.Unmarshal(raw, &teams); err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("standings file %s contains no teams", fileName)
	}

	return NewStandings(teams), nil
}

// Team looks up a team by abbreviation.
func (s *Standings) Team(abbr string) (*Team, bool) {
	t, ok := s.index[abbr]
	return t, ok
}

// Teams returns every team in input order.
func (s *Standings) Teams() []*Team {
	return s.teams
}

// Len returns the number of teams.
func (s *Standings) Len() int {
	return len(s.teams)
}

// Conference returns the teams in the given conference, in input order.
func (s *Standings) Conference(c Conference) []*Team {
	out := make([]*Team, 0, len(s.teams)/2)
	for _, t := range s.teams {
		if t.Conference == c {
			out = append(out, t)
		}
	}
	return out
}

// Division returns the teams in the given division, in input order.
func (s *Standings) Division(d Division) []*Team {
	out := make([]*Team, 0, 4)
	for _, t := range s.teams {
		if t.Division == d {
			out = append(out, t)
		}
	}
	return out
}

// Clone returns an independent value copy of the standings.
func (s *Standings) Clone() *Standings {
	out := &Standings{
		teams: make([]*Team, len(s.teams)),
		index: make(map[string]*Team, len(s.teams)),
	}
	for i, t := range s.teams {
		c := *t
		out.teams[i] = &c
		out.index[c.Abbr] = out.teams[i]
	}
	return out
}

// ApplyResult credits a win to winner and a loss to loser.
// Unknown abbreviations are skipped silently: stale or alternate
// abbreviations in feed data are a data-quality issue, not a hard error.
func (s *Standings) ApplyResult(winner, loser string) {
	if t, ok := s.index[winner]; ok {
		t.Wins++
	}
	if t, ok := s.index[loser]; ok {
		t.Losses++
	}
}

// ApplyTie credits a tie to both teams. Unknown abbreviations are skipped.
func (s *Standings) ApplyTie(a, b string) {
	if t, ok := s.index[a]; ok {
		t.Ties++
	}
	if t, ok := s.index[b]; ok {
		t.Ties++
	}
}
