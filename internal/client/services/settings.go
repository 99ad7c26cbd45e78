package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/finboard/internal/client/client"
	"github.com/dmitrijs2005/finboard/internal/client/models"
	"github.com/dmitrijs2005/finboard/internal/client/repositories/kv"
	"github.com/dmitrijs2005/finboard/internal/common"
	"github.com/dmitrijs2005/finboard/internal/logging"
)

type SettingsService interface {
	// Get returns the session user's settings over the defaults, or the
	// defaults alone when nobody is logged in.
	Get(ctx context.Context) (models.UserSettings, error)
	Save(ctx context.Context, settings models.UserSettings) error
}

type settingsService struct {
	db      *sql.DB
	session SessionProvider
	log     logging.Logger
}

func NewSettingsService(db *sql.DB, session SessionProvider, log logging.Logger) SettingsService {
	return &settingsService{db: db, session: session, log: log}
}

func (s *settingsService) Get(ctx context.Context) (models.UserSettings, error) {
	settings := models.DefaultUserSettings()

	u, err := s.session.CurrentUser(ctx)
	if err != nil || u == nil {
		return settings, err
	}

	raw, err := client.NewRepositories(s.db).KV.Get(ctx, common.UserSettingsKey(u.Username))
	if err != nil {
		return settings, fmt.Errorf("read settings: %w", err)
	}
	if raw == nil {
		return settings, nil
	}

	// Decoding onto the defaults keeps them for fields the blob lacks.
	if err := json.Unmarshal(raw, &settings); err != nil {
		s.log.Warn(ctx, "stored settings are unreadable, using defaults", "username", u.Username, "error", err)
		return models.DefaultUserSettings(), nil
	}
	return settings, nil
}

func (s *settingsService) Save(ctx context.Context, settings models.UserSettings) error {
	username, err := currentUsername(ctx, s.session)
	if err != nil {
		s.log.Warn(ctx, "cannot save settings: no user logged in")
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := kv.SetJSON(ctx, client.NewRepositories(s.db).KV, common.UserSettingsKey(username), settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	s.log.Info(ctx, "settings saved", "username", username)
	return nil
}
