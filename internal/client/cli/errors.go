package cli

import (
	"errors"

	"github.com/dmitrijs2005/finboard/internal/client/categorizer"
	"github.com/dmitrijs2005/finboard/internal/common"
)

var errUsage = errors.New("usage")

// userMessage turns a service error into a one-line message.
func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrNotAuthenticated):
		return "you must be logged in (use 'login' or 'signup')"
	case errors.Is(err, common.ErrUserNotFound):
		return "invalid username or password"
	case errors.Is(err, categorizer.ErrNotConfigured):
		return "categorization needs GEMINI_API_KEY to be set"
	}
	return err.Error()
}
