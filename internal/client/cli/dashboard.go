package cli

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/fitcoach/fitcoach/internal/client/api"
	"github.com/fitcoach/fitcoach/internal/client/models"
)

// dashboardData is the joined result of the three dashboard calls.
type dashboardData struct {
	status *models.StravaStatus
	recent []models.Activity
	coach  *models.CoachPersonality
}

// loadDashboard issues the strava status, recent activities, and active
// coach calls concurrently and joins them. The activities call falls back
// to an empty list on failure; a failure of either other call fails the
// whole load.
func (a *App) loadDashboard(ctx context.Context) (*dashboardData, error) {
	var d dashboardData

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		status, err := a.api.Strava.Status(ctx)
		if err != nil {
			return err
		}
		d.status = status
		return nil
	})

	g.Go(func() error {
		recent, err := a.api.Activities.List(ctx, 1, 5)
		if err != nil {
			// the dashboard still renders without recent activities
			a.log.Warn(ctx, "recent activities unavailable", "error", err)
			return nil
		}
		d.recent = recent
		return nil
	})

	g.Go(func() error {
		coach, err := a.api.Coach.Active(ctx)
		if err != nil {
			return err
		}
		d.coach = coach
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Dashboard renders the landing view and fires the daily-motivation fetch
// in the background; its result shows as a toast only while the user is
// still on this view.
func (a *App) Dashboard(ctx context.Context) error {
	gen := a.currentView()

	d, err := a.loadDashboard(ctx)
	if err != nil {
		return err
	}

	user := a.session.User()
	fmt.Fprintf(a.out, "Hola, %s!\n", user.Name)
	if d.coach != nil {
		fmt.Fprintf(a.out, "Coach: %s %s\n", d.coach.Icon, d.coach.Name)
	}
	if d.status != nil && d.status.Connected {
		fmt.Fprintln(a.out, "Strava: connected")
	} else {
		fmt.Fprintln(a.out, "Strava: not connected (run 'connect')")
	}

	var totalKm float64
	for _, act := range d.recent {
		totalKm += act.DistanceKm
	}
	fmt.Fprintf(a.out, "Recent activities: %d (%.1f km)\n", len(d.recent), totalKm)
	for _, act := range d.recent {
		printActivityLine(a.out, act)
	}

	go func() {
		msg, err := api.DailyMotivation(ctx, a.config.APIBaseURL)
		if err != nil || msg == "" {
			return
		}
		if a.currentView() == gen {
			a.toast.Show(msg)
		}
	}()

	return nil
}

// Motivation fetches the daily message in the foreground.
func (a *App) Motivation(ctx context.Context) error {
	msg, err := api.DailyMotivation(ctx, a.config.APIBaseURL)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}
