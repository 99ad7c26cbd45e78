package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/finboard/internal/client/models"
	"github.com/dmitrijs2005/finboard/internal/common"
)

const settingsUsage = "settings | settings set <theme|email|push|share> <value>"

// Settings prints the session user's preferences, or changes one of them
// with "settings set <name> <value>".
func (a *App) Settings(ctx context.Context, args []string) error {
	if !a.isLoggedIn(ctx) {
		return common.ErrNotAuthenticated
	}

	s, err := a.settings.Get(ctx)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		printlnFn(formatSettings(s))
		return nil
	}
	if len(args) != 3 || args[0] != "set" {
		return fmt.Errorf("%w: %s", errUsage, settingsUsage)
	}

	if err := applySetting(&s, args[1], args[2]); err != nil {
		return err
	}
	if err := a.settings.Save(ctx, s); err != nil {
		return err
	}

	printlnFn("Settings saved.")
	return nil
}

func applySetting(s *models.UserSettings, name, value string) error {
	if name == "theme" {
		s.Theme = models.Theme(strings.ToLower(value))
		return nil
	}

	on, err := parseSwitch(value)
	if err != nil {
		return err
	}

	switch name {
	case "email":
		s.EmailNotifications = on
	case "push":
		s.PushNotifications = on
	case "share":
		s.ShareData = on
	default:
		return fmt.Errorf("%w: unknown setting %q", common.ErrValidation, name)
	}
	return nil
}

func parseSwitch(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: expected on or off, got %q", common.ErrValidation, v)
	}
	return b, nil
}

func formatSettings(s models.UserSettings) string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	return fmt.Sprintf("theme: %s\nemail notifications: %s\npush notifications: %s\nshare data: %s",
		s.Theme, onOff(s.EmailNotifications), onOff(s.PushNotifications), onOff(s.ShareData))
}
