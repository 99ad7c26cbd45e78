// Package client bootstraps local persistence for the finboard CLI.
//
// # Overview
//
// InitDatabase opens (creating if needed) the SQLite file, applies the
// embedded goose migrations and returns the handle. NewRepositories binds
// every repository to a dbx.DBTX, which is either the *sql.DB itself or a
// *sql.Tx opened by dbx.WithTx, so services can run several repository
// calls atomically by rebinding inside the transaction callback.
//
// See Also
//
//   - Migrations: internal/client/migrations
//   - Repositories: internal/client/repositories/...
package client
