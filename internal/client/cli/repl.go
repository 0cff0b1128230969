package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fitcoach/fitcoach/internal/client/session"
)

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	guardState() session.State
	nextView() int64

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error

	Dashboard(ctx context.Context) error
	Activities(ctx context.Context, args []string) error
	ShowActivity(ctx context.Context, args []string) error
	Analyze(ctx context.Context, args []string) error

	Chat(ctx context.Context) error
	History(ctx context.Context, args []string) error
	Coaches(ctx context.Context) error
	SelectCoach(ctx context.Context, args []string) error

	Routines(ctx context.Context) error
	ShowRoutine(ctx context.Context, args []string) error
	AddRoutine(ctx context.Context) error
	UpdateRoutine(ctx context.Context, args []string) error
	DeleteRoutine(ctx context.Context, args []string) error
	Compliance(ctx context.Context, args []string) error

	Strava(ctx context.Context) error
	ConnectStrava(ctx context.Context) error
	DisconnectStrava(ctx context.Context) error
	Sync(ctx context.Context, args []string) error

	Notifications(ctx context.Context) error
	MarkRead(ctx context.Context, args []string) error
	Motivation(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
}

func printHelp(w io.Writer, state session.State) {
	if state == session.StateAuthenticated {
		fmt.Fprintln(w, "Available commands: dashboard, activities, show, analyze, chat,")
		fmt.Fprintln(w, "  history, coaches, coach, routines, routine, addroutine, editroutine,")
		fmt.Fprintln(w, "  delroutine, compliance, strava, connect, disconnect, sync,")
		fmt.Fprintln(w, "  notifications, read, motivation, whoami, profile, deleteaccount,")
		fmt.Fprintln(w, "  logout, exit")
		return
	}
	fmt.Fprintln(w, "Available commands: register, login, exit")
}

// runREPL starts the interactive loop for the fitcoach CLI.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on a. Protected commands pass through the route
// guard: while the session is loading they are blocked, and while logged
// out they route to the login prompt instead. The loop exits on scanner EOF
// or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, toastFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		if msg := toastFn(); msg != "" {
			fmt.Fprintf(w, "✨ %s\n", msg)
		}
		fmt.Fprintf(w, "fitcoach %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		a.nextView()

		var err error
		switch cmd {
		case "help":
			printHelp(w, a.guardState())

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			switch a.guardState() {
			case session.StateLoading:
				fmt.Fprintln(w, "Session is still loading, try again.")
				continue
			case session.StateUnauthenticated:
				fmt.Fprintln(w, "You need to log in first.")
				err = a.Login(ctx)
				if err != nil {
					fmt.Fprintln(w, "Error:", err)
				}
				continue
			}
			err = dispatch(ctx, a, w, cmd, args)
		}

		if err != nil {
			fmt.Fprintln(w, "Error:", err)
		}
	}
}

// dispatch runs one authenticated command.
func dispatch(ctx context.Context, a execIface, w io.Writer, cmd string, args []string) error {
	switch cmd {
	case "dashboard", "d":
		return a.Dashboard(ctx)
	case "activities", "l":
		return a.Activities(ctx, args)
	case "show":
		return a.ShowActivity(ctx, args)
	case "analyze":
		return a.Analyze(ctx, args)
	case "chat":
		return a.Chat(ctx)
	case "history":
		return a.History(ctx, args)
	case "coaches":
		return a.Coaches(ctx)
	case "coach":
		return a.SelectCoach(ctx, args)
	case "routines":
		return a.Routines(ctx)
	case "routine":
		return a.ShowRoutine(ctx, args)
	case "addroutine":
		return a.AddRoutine(ctx)
	case "editroutine":
		return a.UpdateRoutine(ctx, args)
	case "delroutine":
		return a.DeleteRoutine(ctx, args)
	case "compliance":
		return a.Compliance(ctx, args)
	case "strava":
		return a.Strava(ctx)
	case "connect":
		return a.ConnectStrava(ctx)
	case "disconnect":
		return a.DisconnectStrava(ctx)
	case "sync":
		return a.Sync(ctx, args)
	case "notifications":
		return a.Notifications(ctx)
	case "read":
		return a.MarkRead(ctx, args)
	case "motivation":
		return a.Motivation(ctx)
	case "whoami":
		return a.Whoami(ctx)
	case "profile":
		return a.UpdateProfile(ctx)
	case "deleteaccount":
		return a.DeleteAccount(ctx)
	case "logout":
		return a.Logout(ctx)
	default:
		fmt.Fprintln(w, "Unknown command:", cmd)
		return nil
	}
}
