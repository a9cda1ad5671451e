package nfl

import "time"

// GameStatus describes how far along a game is.
type GameStatus string

const (
	// Scheduled games have not kicked off and may be simulated.
	Scheduled GameStatus = "scheduled"
	// InProgress games are underway: too late to simulate, too early to count.
	InProgress GameStatus = "in_progress"
	// Final games are complete and contribute to standings and tiebreakers.
	Final GameStatus = "final"
)

// Game represents one matchup, completed or not.
// Teams are referenced by abbreviation.
type Game struct {
	ID      string     `yaml:"id"`
	Week    int        `yaml:"week"`
	Home    string     `yaml:"home"`
	Away    string     `yaml:"away"`
	Kickoff time.Time  `yaml:"kickoff"`
	Status  GameStatus `yaml:"status"`

	// Winner is the abbreviation of the winning team for Final games.
	// Empty on a Final game means the game ended in a tie.
	Winner string `yaml:"winner,omitempty"`
}

// Played reports whether the game is complete.
func (g Game) Played() bool {
	return g.Status == Final
}

// Tied reports whether the game finished in a tie.
func (g Game) Tied() bool {
	return g.Status == Final && g.Winner == ""
}

// Involves reports whether the given team plays in this game.
func (g Game) Involves(abbr string) bool {
	return g.Home == abbr || g.Away == abbr
}

// Opponent returns the other team in the game, if abbr plays in it.
func (g Game) Opponent(abbr string) (string, bool) {
	switch abbr {
	case g.Home:
		return g.Away, true
	case g.Away:
		return g.Home, true
	}
	return "", false
}

// Loser returns the losing team of a Final, non-tied game.
func (g Game) Loser() string {
	if !g.Played() || g.Tied() {
		return ""
	}
	if g.Winner == g.Home {
		return g.Away
	}
	return g.Home
}
