// Package cli provides the interactive finboard command-line client.
//
// It wires configuration, the local database, application services and an
// interactive REPL. Typical flow: sign up or log in, then manage bank
// accounts of the logged-in user.
//
// Key features:
//   - SignUp / Login / Logout, user roster (users)
//   - Profile: rename, passwd, avatar
//   - Accounts: list, show, add, edit, delete
//   - AI categorization of an account (categorize)
//   - Per-user settings
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// Non-interactive entry points (shell, import, export) are exposed as
// subcommands, see Register.
package cli
