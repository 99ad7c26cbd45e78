package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
// Handlers receive the words typed after the command name.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	SignUp(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context, args []string) error
	Users(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Categorize(ctx context.Context, args []string) error
	Rename(ctx context.Context, args []string) error
	Passwd(ctx context.Context, args []string) error
	Avatar(ctx context.Context, args []string) error
	Settings(ctx context.Context, args []string) error
}

// runREPL starts a simple read-eval-print loop for the finboard CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help               - show available commands
//	  - signup             - create a user and log in
//	  - login [username]   - log in
//	  - users              - list registered users
//	  - exit | quit        - leave the program
//
//	Logged in:
//	  - (l)ist             - list accounts
//	  - show <id>          - account details
//	  - add                - add an account
//	  - edit <id>          - edit an account
//	  - delete <id>        - delete an account
//	  - categorize <id>    - suggest and apply a category
//	  - whoami, rename, passwd, avatar <file>, settings, users, logout
//
// A handler error is printed as a single line and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("finboard%s> ", withSpace(statusFn())))
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: (l)ist, show, add, edit, delete, categorize, whoami, rename, passwd, avatar, settings, users, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, users, exit")
			}

		case "signup", "register":
			cmdErr = a.SignUp(ctx, args)

		case "login":
			cmdErr = a.Login(ctx, args)

		case "logout":
			cmdErr = a.Logout(ctx, args)

		case "whoami":
			cmdErr = a.WhoAmI(ctx, args)

		case "users":
			cmdErr = a.Users(ctx, args)

		case "l", "list":
			cmdErr = a.List(ctx, args)

		case "show":
			cmdErr = a.Show(ctx, args)

		case "add":
			cmdErr = a.Add(ctx, args)

		case "edit":
			cmdErr = a.Edit(ctx, args)

		case "delete", "rm":
			cmdErr = a.Delete(ctx, args)

		case "categorize":
			cmdErr = a.Categorize(ctx, args)

		case "rename":
			cmdErr = a.Rename(ctx, args)

		case "passwd":
			cmdErr = a.Passwd(ctx, args)

		case "avatar":
			cmdErr = a.Avatar(ctx, args)

		case "settings":
			cmdErr = a.Settings(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", userMessage(cmdErr))
		}
		if err != nil {
			return
		}
	}
}

func withSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
