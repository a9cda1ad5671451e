package nfl

import "fmt"

// Conference is one of the two NFL conferences.
type Conference string

// The two conferences.
const (
	AFC Conference = "AFC"
	NFC Conference = "NFC"
)

// Division is a four-team NFL division, e.g. "AFC East".
type Division string

// Team represents one team's identity and current record.
type Team struct {
	ID            int        `yaml:"id" firestore:"id"`
	Abbr          string     `yaml:"abbr" firestore:"abbr"`
	Name          string     `yaml:"name" firestore:"name"`
	Conference    Conference `yaml:"conference" firestore:"conference"`
	Division      Division   `yaml:"division" firestore:"division"`
	Wins          int        `yaml:"wins" firestore:"wins"`
	Losses        int        `yaml:"losses" firestore:"losses"`
	Ties          int        `yaml:"ties" firestore:"ties"`
	PointsFor     int        `yaml:"points_for" firestore:"points_for"`
	PointsAgainst int        `yaml:"points_against" firestore:"points_against"`

	// Clincher is an externally supplied marker (division-clinched,
	// playoff-clinched, eliminated) passed through for display.
	Clincher string `yaml:"clincher,omitempty" firestore:"clincher"`
}

// GamesPlayed returns the number of games reflected in the record.
func (t Team) GamesPlayed() int {
	return t.Wins + t.Losses + t.Ties
}

// WinPct returns the team's win percentage with ties counted as half-wins.
// A team with no games played has a win percentage of 0.
func (t Team) WinPct() float64 {
	n := t.GamesPlayed()
	if n == 0 {
		return 0
	}
	return (float64(t.Wins) + 0.5*float64(t.Ties)) / float64(n)
}

// PointDiffPerGame returns the team's average scoring margin.
func (t Team) PointDiffPerGame() float64 {
	n := t.GamesPlayed()
	if n == 0 {
		return 0
	}
	return float64(t.PointsFor-t.PointsAgainst) / float64(n)
}

// Record formats the record in the usual W-L or W-L-T form.
func (t Team) Record() string {
	if t.Ties > 0 {
		return fmt.Sprintf("%d-%d-%d", t.Wins, t.Losses, t.Ties)
	}
	return fmt.Sprintf("%d-%d", t.Wins, t.Losses)
}

func (t Team) String() string {
	return fmt.Sprintf("%s (%s)", t.Abbr, t.Record())
}
