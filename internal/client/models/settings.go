package models

import (
	"fmt"

	"github.com/dmitrijs2005/finboard/internal/common"
)

// Theme is the preferred colour scheme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// UserSettings are per-user preferences.
type UserSettings struct {
	Theme              Theme `json:"theme"`
	EmailNotifications bool  `json:"emailNotifications"`
	PushNotifications  bool  `json:"pushNotifications"`
	ShareData          bool  `json:"shareData"`
}

func DefaultUserSettings() UserSettings {
	return UserSettings{
		Theme:              ThemeSystem,
		EmailNotifications: true,
		PushNotifications:  false,
		ShareData:          true,
	}
}

func (s UserSettings) Validate() error {
	switch s.Theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return nil
	}
	return fmt.Errorf("%w: unknown theme %q", common.ErrValidation, s.Theme)
}
