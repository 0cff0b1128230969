package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fitcoach/fitcoach/internal/client/api"
)

// Strava prints the link status.
func (a *App) Strava(ctx context.Context) error {
	status, err := a.api.Strava.Status(ctx)
	if err != nil {
		return err
	}
	if status.Connected {
		fmt.Fprintln(a.out, "Strava: connected")
	} else {
		fmt.Fprintln(a.out, "Strava: not connected (run 'connect')")
	}
	return nil
}

// ConnectStrava prints the OAuth URL the user must open in a browser.
func (a *App) ConnectStrava(ctx context.Context) error {
	u, err := a.api.Strava.ConnectURL(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Open this URL to link Strava:\n%s\n", u)
	return nil
}

// DisconnectStrava unlinks the account.
func (a *App) DisconnectStrava(ctx context.Context) error {
	if err := a.api.Strava.Disconnect(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Strava disconnected.")
	return nil
}

// Sync pulls the latest activities from Strava. Args: [limit].
func (a *App) Sync(ctx context.Context, args []string) error {
	limit := api.DefaultSyncLimit
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid limit %q", args[0])
		}
		limit = v
	}

	if err := a.api.Strava.Sync(ctx, limit); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Sync done. See 'activities'.")
	return nil
}
