// Package users persists the local user roster.
//
// # Overview
//
// A user is identified by an opaque ID and carries a unique username plus an
// optional avatar data URL. Passwords are never stored.
//
// Key Types
//
//   - type Repository        - interface used by the session service
//   - type SQLiteRepository  - SQLite implementation over dbx.DBTX
//
// Typical Usage
//
//	repo := users.NewSQLiteRepository(db)
//	_ = repo.Create(ctx, &models.User{ID: id, Username: "ama"})
//	u, _ := repo.GetByUsername(ctx, "ama")
//	_ = repo.Rename(ctx, "ama", "kofi")
package users
