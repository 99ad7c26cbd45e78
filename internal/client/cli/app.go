package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/finboard/internal/client/categorizer"
	"github.com/dmitrijs2005/finboard/internal/client/client"
	"github.com/dmitrijs2005/finboard/internal/client/config"
	"github.com/dmitrijs2005/finboard/internal/client/services"
	"github.com/dmitrijs2005/finboard/internal/logging"
)

type App struct {
	config     *config.Config
	db         *sql.DB
	log        logging.Logger
	auth       services.AuthService
	accounts   services.AccountService
	settings   services.SettingsService
	categorize services.CategorizeService
	transfer   services.TransferService
	reader     *bufio.Reader
	out        io.Writer
}

// NewApp opens the database named in c and wires the services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	var cat categorizer.Categorizer = categorizer.Disabled{}
	if c.GeminiAPIKey != "" {
		g, err := categorizer.NewGemini(ctx, c.GeminiAPIKey, c.GeminiModel, c.CategorizeTimeout)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		cat = g
	} else {
		log.Debug(ctx, "categorization disabled: no API key")
	}

	return newApp(c, db, log, cat, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(c *config.Config, db *sql.DB, log logging.Logger, cat categorizer.Categorizer, r *bufio.Reader, w io.Writer) *App {
	auth := services.NewAuthService(db, log, c.SessionTTL)
	accounts := services.NewAccountService(db, auth, log)

	return &App{
		config:     c,
		db:         db,
		log:        log,
		auth:       auth,
		accounts:   accounts,
		settings:   services.NewSettingsService(db, auth, log),
		categorize: services.NewCategorizeService(accounts, cat, log),
		transfer:   services.NewTransferService(db, log),
		reader:     r,
		out:        w,
	}
}

// Close releases the database.
func (a *App) Close() error {
	return a.db.Close()
}

// Run starts the REPL and closes the app when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	ok, err := a.auth.IsAuthenticated(ctx)
	if err != nil {
		a.log.Error(ctx, "session check failed", "error", err)
		return false
	}
	return ok
}

func (a *App) prompt(text string) (string, error) {
	return getSimpleText(a.reader, text, a.out)
}

func (a *App) printMarkdown(md string) {
	printlnFn(renderMarkdown(md, a.config.RenderStyle))
}

// Import loads a browser data dump from r.
func (a *App) Import(ctx context.Context, r io.Reader) error {
	stats, err := a.transfer.Import(ctx, r)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Imported %d users, %d accounts, %d settings (%d skipped).",
		stats.Users, stats.Accounts, stats.Settings, stats.Skipped))
	return nil
}

// Export writes the whole database to w in the browser dump layout.
func (a *App) Export(ctx context.Context, w io.Writer) error {
	return a.transfer.Export(ctx, w)
}
