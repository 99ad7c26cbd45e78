package services

import (
	"context"

	"github.com/dmitrijs2005/finboard/internal/client/models"
)

// SessionProvider resolves the user on whose behalf a call runs. A nil user
// with a nil error means nobody is logged in.
type SessionProvider interface {
	CurrentUser(ctx context.Context) (*models.User, error)
}

// currentUsername returns the session username or common.ErrNotAuthenticated.
func currentUsername(ctx context.Context, sp SessionProvider) (string, error) {
	u, err := sp.CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", errNotAuthenticated
	}
	return u.Username, nil
}
