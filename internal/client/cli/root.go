package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus(ctx context.Context) string {
	u, err := a.auth.CurrentUser(ctx)
	if err != nil || u == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", u.Username)
}

// Root runs the interactive session on the app's input until exit or EOF.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to finboard (type 'help' for commands)")
	if u, err := a.auth.CurrentUser(ctx); err == nil && u != nil {
		printlnFn(fmt.Sprintf("Logged in as %s.", u.Username))
	}

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}
