package users

import (
	"context"

	"github.com/dmitrijs2005/finboard/internal/client/models"
)

// Repository describes roster operations. Lookups of a missing username
// return common.ErrorNotFound.
type Repository interface {
	// Create inserts u. A taken username yields common.ErrDuplicateUsername.
	Create(ctx context.Context, u *models.User) error

	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// List returns the roster ordered by username.
	List(ctx context.Context) ([]models.User, error)

	// Rename changes oldName to newName. A taken newName yields
	// common.ErrDuplicateUsername.
	Rename(ctx context.Context, oldName, newName string) error

	SetAvatar(ctx context.Context, username, dataURL string) error
}
