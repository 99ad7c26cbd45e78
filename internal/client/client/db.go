package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/finboard/internal/client/migrations"
	"github.com/dmitrijs2005/finboard/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/finboard/internal/client/repositories/kv"
	"github.com/dmitrijs2005/finboard/internal/client/repositories/users"
	"github.com/dmitrijs2005/finboard/internal/dbx"
	"github.com/dmitrijs2005/finboard/internal/filex"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	KV       kv.Repository
	Users    users.Repository
	Accounts accounts.Repository
}

// NewRepositories binds all repositories to db.
func NewRepositories(db dbx.DBTX) *Repositories {
	return &Repositories{
		KV:       kv.NewSQLiteRepository(db),
		Users:    users.NewSQLiteRepository(db),
		Accounts: accounts.NewSQLiteRepository(db),
	}
}

// InitDatabase opens the database at dsn and migrates it to the latest schema.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single connection serialises writers and keeps :memory: databases
	// shared between queries.
	db.SetMaxOpenConns(1)

	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
