package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email, and password, creates the account, and
// finishes with the full login flow so the user lands authenticated.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, name, email, password); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.User().Name)
	return nil
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", a.session.User().Name)
	return nil
}

// Logout clears the persisted credential and the in-memory profile.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the current profile and, when the stored token is a JWT,
// its expiry. The token is decoded without signature verification; it is
// display information, not an authorization decision.
func (a *App) Whoami(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "Name:  %s\n", user.Name)
	fmt.Fprintf(a.out, "Email: %s\n", user.Email)
	if user.ActiveCoachID != 0 {
		fmt.Fprintf(a.out, "Coach: #%d\n", user.ActiveCoachID)
	}

	token, err := a.tokens.Get(ctx)
	if err != nil || token == "" {
		return err
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		fmt.Fprintf(a.out, "Token expires: %s\n", exp.Time.Format(time.RFC822))
	}
	return nil
}
