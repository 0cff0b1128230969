package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fitcoach/fitcoach/internal/client/models"
)

var dayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func formatDays(days []models.RoutineDay) string {
	marks := make([]string, len(dayNames))
	for i, name := range dayNames {
		marks[i] = strings.ToLower(name)
		for _, d := range days {
			if d.DayOfWeek == i {
				marks[i] = name
			}
		}
	}
	return strings.Join(marks, " ")
}

// Routines lists all routines.
func (a *App) Routines(ctx context.Context) error {
	items, err := a.api.Routines.List(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No routines yet. Create one with 'addroutine'.")
		return nil
	}
	for _, r := range items {
		state := "inactive"
		if r.IsActive {
			state = "active"
		}
		fmt.Fprintf(a.out, "  #%d %s [%s]  %s\n", r.ID, r.Name, state, formatDays(r.Days))
	}
	return nil
}

// ShowRoutine prints one routine. Args: <id>.
func (a *App) ShowRoutine(ctx context.Context, args []string) error {
	id, err := parseID(args, "routine <id>")
	if err != nil {
		return err
	}
	r, err := a.api.Routines.Get(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "#%d %s (active: %t)\n", r.ID, r.Name, r.IsActive)
	for _, d := range r.Days {
		name := "?"
		if d.DayOfWeek >= 0 && d.DayOfWeek < len(dayNames) {
			name = dayNames[d.DayOfWeek]
		}
		fmt.Fprintf(a.out, "  %s: %s\n", name, d.Description)
	}
	return nil
}

// promptRoutine interactively collects a routine payload.
func (a *App) promptRoutine() (*models.RoutineRequest, error) {
	name, err := getSimpleText(a.reader, "Routine name", a.out)
	if err != nil {
		return nil, err
	}

	daysLine, err := getSimpleText(a.reader, "Training days (0-6, comma separated, 0=Mon)", a.out)
	if err != nil {
		return nil, err
	}

	var days []models.RoutineDay
	for _, part := range strings.Split(daysLine, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		day, err := strconv.Atoi(part)
		if err != nil || day < 0 || day > 6 {
			return nil, fmt.Errorf("invalid day %q", part)
		}
		days = append(days, models.RoutineDay{DayOfWeek: day})
	}

	return &models.RoutineRequest{Name: name, IsActive: true, Days: days}, nil
}

// AddRoutine interactively creates a routine.
func (a *App) AddRoutine(ctx context.Context) error {
	req, err := a.promptRoutine()
	if err != nil {
		return err
	}
	r, err := a.api.Routines.Create(ctx, *req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created routine #%d.\n", r.ID)
	return nil
}

// UpdateRoutine interactively replaces a routine. Args: <id>.
func (a *App) UpdateRoutine(ctx context.Context, args []string) error {
	id, err := parseID(args, "editroutine <id>")
	if err != nil {
		return err
	}
	req, err := a.promptRoutine()
	if err != nil {
		return err
	}
	if _, err := a.api.Routines.Update(ctx, id, *req); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated routine #%d.\n", id)
	return nil
}

// DeleteRoutine removes a routine. Args: <id>.
func (a *App) DeleteRoutine(ctx context.Context, args []string) error {
	id, err := parseID(args, "delroutine <id>")
	if err != nil {
		return err
	}
	if err := a.api.Routines.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted routine #%d.\n", id)
	return nil
}

// Compliance prints the backend's adherence report. Args: <id>.
func (a *App) Compliance(ctx context.Context, args []string) error {
	id, err := parseID(args, "compliance <id>")
	if err != nil {
		return err
	}
	report, err := a.api.Routines.Compliance(ctx, id)
	if err != nil {
		return err
	}
	for key, value := range report {
		fmt.Fprintf(a.out, "  %s: %v\n", key, value)
	}
	return nil
}
