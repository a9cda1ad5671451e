package main

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/iterator"

	"github.com/reallyasi9/playoff-picture/internal/nfl"
)

// gameDoc is a game's Firestore representation.
type gameDoc struct {
	ID      string    `firestore:"id"`
	Week    int       `firestore:"week"`
	Home    string    `firestore:"home"`
	Away    string    `firestore:"away"`
	Kickoff time.Time `firestore:"kickoff"`
	Status  string    `firestore:"status"`
	Winner  string    `firestore:"winner"`
}

// fetchSeason pulls standings and schedule for the most recent season from
// Firestore. Team documents unmarshal straight into nfl.Team.
func fetchSeason(ctx context.Context, projectID string) (*nfl.Standings, nfl.Schedule, error) {
	conf := &firebase.Config{ProjectID: projectID}
	app, err := firebase.NewApp(ctx, conf)
	if err != nil {
		return nil, nil, err
	}
	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer fs.Close()

	iter := fs.Collection("seasons").OrderBy("start", firestore.Desc).Limit(1).Documents(ctx)
	seasonDoc, err := iter.Next()
	iter.Stop()
	if err != nil {
		return nil, nil, fmt.Errorf("fetching latest season: %w", err)
	}

	teams := make([]nfl.Team, 0, 32)
	iter = seasonDoc.Ref.Collection("teams").Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			iter.Stop()
			return nil, nil, fmt.Errorf("fetching teams: %w", err)
		}
		var t nfl.Team
		if err := doc.DataTo(&t); err != nil {
			iter.Stop()
			return nil, nil, fmt.Errorf("parsing team %s: %w", doc.Ref.ID, err)
		}
		teams = append(teams, t)
	}
	iter.Stop()
	if len(teams) == 0 {
		return nil, nil, fmt.Errorf("season %s has no teams", seasonDoc.Ref.ID)
	}

	schedule := make(nfl.Schedule, 0, 18*16)
	iter = seasonDoc.Ref.Collection("games").OrderBy("week", firestore.Asc).Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			iter.Stop()
			return nil, nil, fmt.Errorf("fetching games: %w", err)
		}
		var g gameDoc
		if err := doc.DataTo(&g); err != nil {
			iter.Stop()
			return nil, nil, fmt.Errorf("parsing game %s: %w", doc.Ref.ID, err)
		}
		if g.ID == "" {
			g.ID = doc.Ref.ID
		}
		schedule = append(schedule, nfl.Game{
			ID:      g.ID,
			Week:    g.Week,
			Home:    g.Home,
			Away:    g.Away,
			Kickoff: g.Kickoff,
			Status:  nfl.GameStatus(g.Status),
			Winner:  g.Winner,
		})
	}
	iter.Stop()

	return nfl.NewStandings(teams), schedule, nil
}
