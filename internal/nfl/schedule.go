package nfl

import (
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Schedule is a season's list of games, completed and upcoming.
type Schedule []Game

// MakeSchedule parses a schedule YAML file.
func MakeSchedule(fileName string) (Schedule, error) {
	raw, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	var games Schedule
	if err := yaml.Unmarshal(raw, &games); err != nil {
		return nil, err
	}

	return games, nil
}

// Remaining returns the games that have not yet kicked off.
// Only these are eligible as simulation inputs.
func (s Schedule) Remaining() Schedule {
	out := make(Schedule, 0, len(s))
	for _, g := range s {
		if g.Status == Scheduled {
			out = append(out, g)
		}
	}
	return out
}

// Completed returns the games that have gone final.
func (s Schedule) Completed() Schedule {
	out := make(Schedule, 0, len(s))
	for _, g := range s {
		if g.Played() {
			out = append(out, g)
		}
	}
	return out
}

// Week returns the games scheduled for the given week.
func (s Schedule) Week(w int) Schedule {
	out := make(Schedule, 0, 16)
	for _, g := range s {
		if g.Week == w {
			out = append(out, g)
		}
	}
	return out
}
