package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// getStatus returns the prompt decoration for the current session,
// the logged-in user's email in parentheses, or "(guest)".
func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return "(guest)"
}

// Root runs the interactive command loop until EOF or an exit command.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to FitCoach! Type help to see available commands.")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, a.toast.Message, scanner, a.out)
}
