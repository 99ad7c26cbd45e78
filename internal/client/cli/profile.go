package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/finboard/internal/common"
	"github.com/dmitrijs2005/finboard/internal/filex"
)

var errPasswordMismatch = errors.New("passwords do not match")

// readDataURL is a test seam for loading avatar files.
var readDataURL = filex.ReadDataURL

func (a *App) currentUsername(ctx context.Context) (string, error) {
	u, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", common.ErrNotAuthenticated
	}
	return u.Username, nil
}

// Rename changes the session user's username. Accounts and settings move
// with it.
func (a *App) Rename(ctx context.Context, args []string) error {
	oldName, err := a.currentUsername(ctx)
	if err != nil {
		return err
	}

	newName, err := a.usernameArg(args)
	if err != nil {
		return err
	}

	u, err := a.auth.UpdateUsername(ctx, oldName, newName)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("You are now %s.", u.Username))
	return nil
}

// Passwd asks for a new password twice.
func (a *App) Passwd(ctx context.Context, _ []string) error {
	username, err := a.currentUsername(ctx)
	if err != nil {
		return err
	}

	pw, err := getPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	again, err := getPassword(a.reader, "Repeat new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(again)

	if !bytes.Equal(pw, again) {
		return errPasswordMismatch
	}

	if err := a.auth.UpdatePassword(ctx, username, pw); err != nil {
		return err
	}

	printlnFn("Password updated.")
	return nil
}

// Avatar sets the profile picture from an image file. "avatar -" clears it.
func (a *App) Avatar(ctx context.Context, args []string) error {
	username, err := a.currentUsername(ctx)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: avatar <image file> | avatar -", errUsage)
	}

	var dataURL string
	if args[0] != "-" {
		dataURL, err = readDataURL(args[0])
		if err != nil {
			return err
		}
	}

	if _, err := a.auth.UpdateUserAvatar(ctx, username, dataURL); err != nil {
		return err
	}

	if dataURL == "" {
		printlnFn("Avatar removed.")
	} else {
		printlnFn("Avatar updated.")
	}
	return nil
}
