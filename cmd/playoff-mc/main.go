package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/reallyasi9/playoff-picture/internal/nfl"
	"github.com/reallyasi9/playoff-picture/internal/playoff"
)

var standingsFile = flag.String("standings",
	"standings.yaml",
	"YAML `file` containing the current standings")
var scheduleFile = flag.String("schedule",
	"schedule.yaml",
	"YAML `file` containing the season schedule, completed games included")
var teamAbbr = flag.String("team", "", "target team `abbreviation`")
var mode = flag.String("mode", "random", "sampling `mode`: random, weighted, or gaussian")
var trials = flag.Int("trials", 0, "`number` of Monte Carlo trials (0 uses the configured default)")
var randomSeed = flag.Int64("seed", 0, "random `seed` (0 seeds from the clock)")
var project = flag.String("project", "", "Google Cloud `project` to load standings and schedule from instead of YAML files")

func main() {
	flag.Parse()
	log := logrus.New()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("could not load .env file")
	}
	cfg, err := NewConfig()
	if err != nil {
		log.WithError(err).Fatal("bad configuration")
	}

	if *teamAbbr == "" {
		log.Fatal("a target team is required: pass -team")
	}
	if *trials == 0 {
		*trials = cfg.Trials
	}
	if *project == "" {
		*project = cfg.Project
	}
	seed := *randomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var standings *nfl.Standings
	var schedule nfl.Schedule
	if *project != "" {
		ctx := context.Background()
		standings, schedule, err = fetchSeason(ctx, *project)
		if err != nil {
			log.WithError(err).WithField("project", *project).Fatal("could not fetch season from Firestore")
		}
	} else {
		standings, err = nfl.MakeStandings(*standingsFile)
		if err != nil {
			log.WithError(err).Fatal("could not load standings")
		}
		schedule, err = nfl.MakeSchedule(*scheduleFile)
		if err != nil {
			log.WithError(err).Fatal("could not load schedule")
		}
	}
	log.WithFields(logrus.Fields{
		"teams": standings.Len(),
		"games": len(schedule),
	}).Info("loaded season data")
	if rem := schedule.Remaining(); len(rem) > 0 {
		next := rem[0].Week
		for _, g := range rem {
			if g.Week < next {
				next = g.Week
			}
		}
		log.WithFields(logrus.Fields{
			"week":  next,
			"games": len(schedule.Week(next)),
		}).Info("next week of games")
	}

	model, err := makeModel(*mode, cfg)
	if err != nil {
		log.WithError(err).Fatal("bad sampling mode")
	}

	session, err := playoff.NewSession(standings, schedule, *teamAbbr, model)
	if err != nil {
		log.WithError(err).Fatal("could not start session")
	}
	log.WithFields(logrus.Fields{
		"team":     session.Target().Abbr,
		"critical": len(session.CriticalGames()),
	}).Info("filtered critical games")

	mc := session.RunMonteCarlo(*trials, seed)
	log.WithFields(logrus.Fields{
		"trials":      mc.Trials,
		"probability": mc.Probability,
	}).Info("monte carlo complete")

	best := session.SearchBest(seed)
	worst := session.SearchWorst(seed)
	log.WithFields(logrus.Fields{
		"best_exhaustive": best.Exhaustive,
		"best_seed":       best.Result.Seed,
	}).Info("scenario search complete")

	rec := session.Records()
	report := Report{
		Team:             session.Target().Abbr,
		Record:           session.Target().Record(),
		ConferenceRecord: rec.ConferenceRecord(session.Target().Abbr).String(),
		DivisionRecord:   rec.DivisionRecord(session.Target().Abbr).String(),
		GeneratedAt:      time.Now(),
		Seeding:          seedJSON(session.ConferenceSeeding()),
		CriticalGames:    criticalJSON(session.CriticalGames(), session.LockedOutcomes()),
		Probability:      mc.Probability,
		Trials:           mc.Trials,
		SeedCounts:       mc.SeedCounts,
		BestCase:         scenarioJSON(best, session.Target().Abbr),
		WorstCase:        scenarioJSON(worst, session.Target().Abbr),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.WithError(err).Fatal("could not write report")
	}
}

func makeModel(mode string, cfg *Config) (playoff.WinModel, error) {
	switch mode {
	case "random":
		return playoff.CoinFlip{}, nil
	case "weighted":
		return playoff.RecordWeighted{Bonus: cfg.HomeFieldBonus}, nil
	case "gaussian":
		return playoff.NewGaussianDiff(cfg.GaussianSigma, cfg.HomeEdgePoints), nil
	}
	return nil, fmt.Errorf("unknown mode %q", mode)
}
