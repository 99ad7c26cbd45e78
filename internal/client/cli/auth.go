package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/finboard/internal/common"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getConfirmation = GetConfirmation

// usernameArg returns the first argument or prompts for a username.
func (a *App) usernameArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return a.prompt("Username")
}

// SignUp prompts for a username and password, creates the user and starts a
// session for it.
//
// The password byte slice is wiped before returning. On success it prints a
// greeting and returns nil.
func (a *App) SignUp(ctx context.Context, args []string) error {
	username, err := a.usernameArg(args)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.auth.SignUp(ctx, username, password)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", u.Username))
	return nil
}

// Login prompts for credentials and starts a session for an existing user.
func (a *App) Login(ctx context.Context, args []string) error {
	username, err := a.usernameArg(args)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.auth.LogIn(ctx, username, password)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Logged in as %s.", u.Username))
	return nil
}

// Logout ends the current session. Logging out twice is not an error.
func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.auth.LogOut(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the current user.
func (a *App) WhoAmI(ctx context.Context, _ []string) error {
	u, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	avatar := "no"
	if u.AvatarDataURL != "" {
		avatar = "yes"
	}
	printlnFn(fmt.Sprintf("%s (since %s, avatar: %s)", u.Username, u.CreatedAt.Local().Format("2006-01-02"), avatar))
	return nil
}

// Users lists registered usernames.
func (a *App) Users(ctx context.Context, _ []string) error {
	users, err := a.auth.Users(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		printlnFn("No users yet. Use 'signup' to create one.")
		return nil
	}

	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}
	printlnFn(strings.Join(names, "\n"))
	return nil
}
