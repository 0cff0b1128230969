package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fitcoach/fitcoach/internal/client/models"
)

func (a *App) printMessage(msg models.ChatMessage, coach *models.CoachPersonality) {
	who := "you"
	if !msg.IsFromUser && coach != nil {
		who = coach.Icon + " " + coach.Name
	} else if !msg.IsFromUser {
		who = "coach"
	}
	fmt.Fprintf(a.out, "[%s] %s: %s\n", msg.CreatedAt.Format("15:04"), who, msg.Content)
}

// History prints the most recent messages. Args: [limit].
func (a *App) History(ctx context.Context, args []string) error {
	limit := 0
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid limit %q", args[0])
		}
		limit = v
	}

	messages, err := a.api.Coach.History(ctx, limit)
	if err != nil {
		return err
	}
	coach, err := a.api.Coach.Active(ctx)
	if err != nil {
		coach = nil
	}

	for _, msg := range messages {
		a.printMessage(msg, coach)
	}
	return nil
}

// Chat opens an interactive conversation with the active coach. An empty
// line or "/back" leaves the conversation.
func (a *App) Chat(ctx context.Context) error {
	coach, err := a.api.Coach.Active(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Chatting with %s %s. Empty line to leave.\n", coach.Icon, coach.Name)

	for {
		line, err := getSimpleText(a.reader, "", a.out)
		if err != nil {
			return err
		}
		if line == "" || line == "/back" {
			return nil
		}

		reply, err := a.api.Coach.Chat(ctx, line)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s %s: %s\n", coach.Icon, coach.Name, reply)
	}
}
