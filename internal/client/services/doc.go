// Package services contains the application services of the finboard client.
//
// # Overview
//
//   - AuthService: the session store. Sign-up, log-in and log-out of the
//     single local session, the user roster, and profile changes (rename,
//     password, avatar).
//   - AccountService: CRUD over the bank accounts of the session user.
//   - SettingsService: per-user preferences.
//   - CategorizeService: AI category suggestions for an account.
//   - TransferService: import and export of a browser data dump.
//
// Services that act on behalf of "the current user" receive a
// SessionProvider rather than reading the session themselves, so tests can
// substitute a fixed identity.
//
// # Error Handling
//
// Domain failures wrap the sentinels of internal/common (ErrValidation,
// ErrDuplicateUsername, ErrUserNotFound, ErrNotAuthenticated, ErrorNotFound)
// and are matched with errors.Is. A failed mutation leaves storage untouched:
// multi-step changes run inside dbx.WithTx.
package services
