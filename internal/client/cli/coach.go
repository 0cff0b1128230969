package cli

import (
	"context"
	"fmt"
)

// Coaches lists the selectable personas, marking the active one.
func (a *App) Coaches(ctx context.Context) error {
	personas, err := a.api.Coach.Personalities(ctx)
	if err != nil {
		return err
	}

	activeID := int64(0)
	if user := a.session.User(); user != nil {
		activeID = user.ActiveCoachID
	}

	for _, p := range personas {
		marker := " "
		if p.ID == activeID {
			marker = "*"
		}
		fmt.Fprintf(a.out, " %s #%d %s %s — %s\n", marker, p.ID, p.Icon, p.Name, p.Description)
	}
	return nil
}

// SelectCoach activates a persona server-side, then patches the local
// profile only after the backend confirmed the change. Args: <id>.
func (a *App) SelectCoach(ctx context.Context, args []string) error {
	id, err := parseID(args, "coach <id>")
	if err != nil {
		return err
	}

	if err := a.api.Coach.SetActive(ctx, id); err != nil {
		return err
	}
	a.session.SetActiveCoach(id)

	fmt.Fprintf(a.out, "Coach #%d is now your trainer.\n", id)
	return nil
}
