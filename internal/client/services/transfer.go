package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/finboard/internal/client/client"
	"github.com/dmitrijs2005/finboard/internal/client/models"
	"github.com/dmitrijs2005/finboard/internal/common"
	"github.com/dmitrijs2005/finboard/internal/dbx"
	"github.com/dmitrijs2005/finboard/internal/logging"
	"github.com/google/uuid"
)

// ImportStats counts what an import changed.
type ImportStats struct {
	Users    int
	Accounts int
	Settings int
	Skipped  int
}

// TransferService moves data in and out of the database using the layout
// of the browser edition's localStorage: one JSON object whose keys are the
// storage keys (users, bankAccounts, loggedInUser, userSettings_<name>).
type TransferService interface {
	// Import merges a dump into the database. Existing users, accounts with a
	// known ID and existing settings are left as they are. The session marker
	// of the dump is not restored.
	Import(ctx context.Context, r io.Reader) (ImportStats, error)
	Export(ctx context.Context, w io.Writer) error
}

type transferService struct {
	db  *sql.DB
	log logging.Logger
	now func() time.Time
}

func NewTransferService(db *sql.DB, log logging.Logger) TransferService {
	return &transferService{db: db, log: log, now: time.Now}
}

func (s *transferService) Import(ctx context.Context, r io.Reader) (ImportStats, error) {
	var dump map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&dump); err != nil {
		return ImportStats{}, fmt.Errorf("%w: malformed dump: %v", common.ErrValidation, err)
	}

	var users []models.User
	if err := decodeEntry(dump, common.UsersKey, &users); err != nil {
		return ImportStats{}, err
	}
	var accounts []models.Account
	if err := decodeEntry(dump, common.BankAccountsKey, &accounts); err != nil {
		return ImportStats{}, err
	}

	var stats ImportStats
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		stats = ImportStats{}
		repos := client.NewRepositories(tx)
		now := s.now().UTC()

		for _, u := range users {
			if strings.TrimSpace(u.Username) == "" {
				stats.Skipped++
				continue
			}
			_, err := repos.Users.GetByUsername(ctx, u.Username)
			if err == nil {
				continue
			}
			if !errors.Is(err, common.ErrorNotFound) {
				return err
			}
			u.ID = uuid.NewString()
			if u.CreatedAt.IsZero() {
				u.CreatedAt = now
			}
			if err := repos.Users.Create(ctx, &u); err != nil {
				return err
			}
			stats.Users++
		}

		existing, err := repos.Accounts.ListAll(ctx)
		if err != nil {
			return err
		}
		known := make(map[string]bool, len(existing))
		for _, a := range existing {
			known[a.ID] = true
		}

		for _, a := range accounts {
			if a.ID == "" || a.UserID == "" {
				stats.Skipped++
				continue
			}
			if known[a.ID] {
				continue
			}
			if err := a.Validate(); err != nil {
				s.log.Warn(ctx, "skipping invalid account", "account_id", a.ID, "error", err)
				stats.Skipped++
				continue
			}
			if a.CreatedAt.IsZero() {
				a.CreatedAt = now
			}
			if a.UpdatedAt.IsZero() {
				a.UpdatedAt = a.CreatedAt
			}
			if err := repos.Accounts.CreateOrUpdate(ctx, &a); err != nil {
				return err
			}
			known[a.ID] = true
			stats.Accounts++
		}

		for key := range dump {
			if !strings.HasPrefix(key, common.UserSettingsKeyPrefix) {
				continue
			}
			cur, err := repos.KV.Get(ctx, key)
			if err != nil {
				return err
			}
			if cur != nil {
				continue
			}

			settings := models.DefaultUserSettings()
			if err := decodeEntry(dump, key, &settings); err != nil {
				return err
			}
			if err := settings.Validate(); err != nil {
				s.log.Warn(ctx, "skipping invalid settings", "key", key, "error", err)
				stats.Skipped++
				continue
			}
			raw, err := json.Marshal(settings)
			if err != nil {
				return err
			}
			if err := repos.KV.Set(ctx, key, raw); err != nil {
				return err
			}
			stats.Settings++
		}
		return nil
	})
	if err != nil {
		return ImportStats{}, fmt.Errorf("import: %w", err)
	}

	if _, ok := dump[common.LoggedInUserKey]; ok {
		s.log.Debug(ctx, "session marker in dump ignored")
	}
	s.log.Info(ctx, "import finished",
		"users", stats.Users, "accounts", stats.Accounts, "settings", stats.Settings, "skipped", stats.Skipped)
	return stats, nil
}

func (s *transferService) Export(ctx context.Context, w io.Writer) error {
	repos := client.NewRepositories(s.db)

	users, err := repos.Users.List(ctx)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	accounts, err := repos.Accounts.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	pairs, err := repos.KV.List(ctx)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if users == nil {
		users = []models.User{}
	}
	if accounts == nil {
		accounts = []models.Account{}
	}

	dump := map[string]any{
		common.UsersKey:        users,
		common.BankAccountsKey: accounts,
	}
	for key, raw := range pairs {
		if strings.HasPrefix(key, common.UserSettingsKeyPrefix) && json.Valid(raw) {
			dump[key] = json.RawMessage(raw)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	s.log.Info(ctx, "export finished", "users", len(users), "accounts", len(accounts))
	return nil
}

// decodeEntry decodes dump[key] into v. localStorage stores every value as a
// string, so a JSON string is unwrapped once before decoding. Missing keys
// leave v untouched.
func decodeEntry(dump map[string]json.RawMessage, key string, v any) error {
	raw, ok := dump[key]
	if !ok || string(raw) == "null" {
		return nil
	}

	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		raw = json.RawMessage(inner)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: malformed %q: %v", common.ErrValidation, key, err)
	}
	return nil
}
