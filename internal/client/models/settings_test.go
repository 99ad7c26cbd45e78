package models

import (
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/finboard/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultUserSettings(t *testing.T) {
	s := DefaultUserSettings()
	assert.Equal(t, ThemeSystem, s.Theme)
	assert.True(t, s.EmailNotifications)
	assert.False(t, s.PushNotifications)
	assert.True(t, s.ShareData)
	require.NoError(t, s.Validate())
}

func TestUserSettings_PartialBlobKeepsDefaults(t *testing.T) {
	s := DefaultUserSettings()
	require.NoError(t, json.Unmarshal([]byte(`{"theme":"dark","shareData":false}`), &s))

	assert.Equal(t, ThemeDark, s.Theme)
	assert.False(t, s.ShareData)
	assert.True(t, s.EmailNotifications)
}

func TestUserSettings_ValidateTheme(t *testing.T) {
	s := DefaultUserSettings()
	s.Theme = "neon"
	require.ErrorIs(t, s.Validate(), common.ErrValidation)
}
