package cli

import (
	"context"
	"fmt"
)

// Notifications lists the user's notifications.
func (a *App) Notifications(ctx context.Context) error {
	items, err := a.api.Notifications.List(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No notifications.")
		return nil
	}
	for _, n := range items {
		marker := "•"
		if n.Read {
			marker = " "
		}
		fmt.Fprintf(a.out, " %s #%d [%s] %s\n", marker, n.ID,
			n.CreatedAt.Format("02 Jan 15:04"), n.Message)
	}
	return nil
}

// MarkRead flags one notification as read. Args: <id>.
func (a *App) MarkRead(ctx context.Context, args []string) error {
	id, err := parseID(args, "read <id>")
	if err != nil {
		return err
	}
	if err := a.api.Notifications.MarkAsRead(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Notification #%d marked as read.\n", id)
	return nil
}
