package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fitcoach/fitcoach/internal/client/models"
)

func activityIcon(kind string) string {
	switch kind {
	case "Run":
		return "🏃"
	case "Ride":
		return "🚴"
	default:
		return "💪"
	}
}

func printActivityLine(w io.Writer, act models.Activity) {
	state := "pending"
	if act.Analyzed {
		state = "analyzed"
	}
	fmt.Fprintf(w, "  #%d %s %s  %s  %.2f km  %d min  [%s]\n",
		act.ID, activityIcon(act.Type), act.Name,
		act.StartDate.Format("Mon 02 Jan"),
		act.DistanceKm, int(act.DurationMinutes), state)
}

// Activities lists one page of activities. Args: [page [page_size]].
func (a *App) Activities(ctx context.Context, args []string) error {
	page, size := 1, 50
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid page %q", args[0])
		}
		page = v
	}
	if len(args) > 1 {
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid page size %q", args[1])
		}
		size = v
	}

	items, err := a.api.Activities.List(ctx, page, size)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No activities yet. Connect Strava and run 'sync'.")
		return nil
	}
	for _, act := range items {
		printActivityLine(a.out, act)
	}
	return nil
}

func parseID(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

// ShowActivity renders one activity with its AI analysis, if present.
func (a *App) ShowActivity(ctx context.Context, args []string) error {
	id, err := parseID(args, "show <id>")
	if err != nil {
		return err
	}

	act, err := a.api.Activities.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s %s — %s\n", activityIcon(act.Type), act.Name,
		act.StartDate.Format("Monday 02 January 2006"))
	fmt.Fprintf(a.out, "  %.2f km, %d min", act.DistanceKm, int(act.DurationMinutes))
	if act.AvgPace > 0 {
		fmt.Fprintf(a.out, ", %.2f min/km", act.AvgPace)
	}
	if act.AvgHeartrate > 0 {
		fmt.Fprintf(a.out, ", %d bpm", int(act.AvgHeartrate))
	}
	if act.ElevationGain > 0 {
		fmt.Fprintf(a.out, ", %d m up", int(act.ElevationGain))
	}
	if act.Calories > 0 {
		fmt.Fprintf(a.out, ", %d kcal", int(act.Calories))
	}
	fmt.Fprintln(a.out)

	if len(act.Analyses) > 0 {
		an := act.Analyses[0]
		fmt.Fprintf(a.out, "\nTechnical analysis:\n%s\n", an.TechnicalAnalysis)
		fmt.Fprintf(a.out, "\nCorrections:\n%s\n", an.Corrections)
		fmt.Fprintf(a.out, "\nMotivation:\n%s\n", an.Motivation)
	} else if !act.Analyzed {
		fmt.Fprintf(a.out, "\nNot analyzed yet. Run 'analyze %d'.\n", act.ID)
	}
	return nil
}

// Analyze requests an AI review of the activity. Args: <id> [force].
func (a *App) Analyze(ctx context.Context, args []string) error {
	id, err := parseID(args, "analyze <id> [force]")
	if err != nil {
		return err
	}
	force := len(args) > 1 && args[1] == "force"

	if err := a.api.Activities.Analyze(ctx, id, force); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Analysis requested. See it with 'show %d'.\n", id)
	return nil
}
