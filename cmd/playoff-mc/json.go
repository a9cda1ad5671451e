package main

import (
	"time"

	"github.com/reallyasi9/playoff-picture/internal/playoff"
)

// SeedJSON is one playoff slot in the output.
type SeedJSON struct {
	// Seed is the playoff seed, 1-7.
	Seed int
	// Team is the team's abbreviation.
	Team string
	// Record is the team's W-L(-T) record.
	Record string
	// DivisionWinner marks seeds earned by winning a division.
	DivisionWinner bool
	// TiebreakReason explains a ranking decided beyond win percentage.
	TiebreakReason string `json:",omitempty"`
}

// CriticalGameJSON is one relevant remaining game.
type CriticalGameJSON struct {
	// ID is the game's identifier.
	ID string
	// Week is the NFL week number.
	Week int
	// Home and Away are team abbreviations.
	Home string
	Away string
	// Impact scores the game's relevance to the target, 0-100.
	Impact int
	// Label names the impact tier.
	Label string
	// Locked is the user-fixed winning side, if any.
	Locked string `json:",omitempty"`
}

// ScenarioJSON is the target's fate under one outcome assignment.
type ScenarioJSON struct {
	// MadePlayoffs reports whether the target earned a seed.
	MadePlayoffs bool
	// Seed is the target's seed, 0 on a miss.
	Seed int
	// DivisionRank is the target's place in its division.
	DivisionRank int
	// WildcardRank is the target's place in the wildcard pool, 0 for
	// division winners.
	WildcardRank int
	// FinalRecord is the target's hypothetical final record.
	FinalRecord string
	// Picks are the games the search decided, most impactful first.
	Picks []PickJSON
	// Exhaustive reports whether the full outcome space was enumerated.
	Exhaustive bool
}

// PickJSON is one game the search decided.
type PickJSON struct {
	ID     string
	Week   int
	Winner string
	Loser  string
}

// Report is the command's complete JSON output.
type Report struct {
	// Team is the target team's abbreviation.
	Team string
	// Record is the target's current record.
	Record string
	// ConferenceRecord and DivisionRecord are the target's records in the
	// tiebreak scopes.
	ConferenceRecord string
	DivisionRecord   string
	// GeneratedAt is when the calculation finished.
	GeneratedAt time.Time
	// Seeding is the conference's current playoff picture.
	Seeding []SeedJSON
	// CriticalGames are the remaining games that matter.
	CriticalGames []CriticalGameJSON
	// Probability is the Monte Carlo playoff probability, in percent.
	Probability float64
	// Trials is the Monte Carlo trial count.
	Trials int
	// SeedCounts is how often each seed came up across trials.
	SeedCounts map[int]int
	// BestCase and WorstCase are the extremal scenarios found.
	BestCase  ScenarioJSON
	WorstCase ScenarioJSON
}

func seedJSON(seeding []playoff.PlayoffTeam) []SeedJSON {
	out := make([]SeedJSON, len(seeding))
	for i, pt := range seeding {
		out[i] = SeedJSON{
			Seed:           pt.Seed,
			Team:           pt.Abbr,
			Record:         pt.Team.Record(),
			DivisionWinner: pt.DivisionWinner,
			TiebreakReason: pt.TiebreakReason,
		}
	}
	return out
}

func criticalJSON(games []playoff.CriticalGame, locked playoff.Outcomes) []CriticalGameJSON {
	out := make([]CriticalGameJSON, len(games))
	for i, cg := range games {
		out[i] = CriticalGameJSON{
			ID:     cg.ID,
			Week:   cg.Week,
			Home:   cg.Home,
			Away:   cg.Away,
			Impact: cg.Impact,
			Label:  cg.Label,
			Locked: string(locked[cg.ID]),
		}
	}
	return out
}

func scenarioJSON(sr playoff.SearchResult, targetAbbr string) ScenarioJSON {
	out := ScenarioJSON{
		MadePlayoffs: sr.Result.MadePlayoffs,
		Seed:         sr.Result.Seed,
		DivisionRank: sr.Result.DivisionRank,
		WildcardRank: sr.Result.WildcardRank,
		Exhaustive:   sr.Exhaustive,
		Picks:        make([]PickJSON, len(sr.Picks)),
	}
	if t, ok := sr.Result.Standings.Team(targetAbbr); ok {
		out.FinalRecord = t.Record()
	}
	for i, p := range sr.Picks {
		loser, _ := p.Game.Opponent(p.Winner)
		out.Picks[i] = PickJSON{
			ID:     p.Game.ID,
			Week:   p.Game.Week,
			Winner: p.Winner,
			Loser:  loser,
		}
	}
	return out
}
