package cli

import (
	"context"
	"fmt"

	"github.com/fitcoach/fitcoach/internal/client/models"
)

// UpdateProfile interactively edits name and email. Empty answers keep the
// current values.
func (a *App) UpdateProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "New name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "New email (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if name == "" && email == "" {
		fmt.Fprintln(a.out, "Nothing to change.")
		return nil
	}

	user, err := a.api.Users.Update(ctx, models.UserUpdate{Name: name, Email: email})
	if err != nil {
		return err
	}
	a.session.SetUser(*user)

	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

// DeleteAccount permanently removes the account after a typed confirmation,
// then logs out locally.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Type DELETE to remove your account permanently", a.out)
	if err != nil {
		return err
	}
	if answer != "DELETE" {
		fmt.Fprintln(a.out, "Aborted.")
		return nil
	}

	if err := a.api.Users.Delete(ctx); err != nil {
		return err
	}
	return a.session.Logout(ctx)
}
