package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/finboard/internal/client/migrations"
	"github.com/dmitrijs2005/finboard/internal/client/models"
	"github.com/dmitrijs2005/finboard/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(context.Background(), db))
	return db
}

// fixedClock returns a clock starting at a fixed instant that can be moved.
type fixedClock struct{ t time.Time }

func newClock() *fixedClock {
	return &fixedClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fixedClock) Now() time.Time          { return c.t }
func (c *fixedClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newAuth(t *testing.T, db *sql.DB, ttl time.Duration) *authService {
	t.Helper()
	return NewAuthService(db, logging.Nop(), ttl).(*authService)
}

func newAccounts(db *sql.DB, sp SessionProvider, clock *fixedClock) *accountService {
	s := NewAccountService(db, sp, logging.Nop()).(*accountService)
	if clock != nil {
		s.now = clock.Now
	}
	return s
}

// staticSession is a SessionProvider bound to a fixed user, or to nobody
// when User is nil.
type staticSession struct {
	User *models.User
}

func (s staticSession) CurrentUser(context.Context) (*models.User, error) {
	if s.User == nil {
		return nil, nil
	}
	u := *s.User
	return &u, nil
}

func as(username string) staticSession {
	return staticSession{User: &models.User{ID: "id-" + username, Username: username}}
}

func sampleAccount(name string) models.Account {
	return models.Account{
		AccountName: name,
		BankName:    "Ecobank",
		Balance:     decimal.RequireFromString("1200.50"),
		AccountType: models.AccountTypeChecking,
		Description: "everyday spending",
	}
}

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
