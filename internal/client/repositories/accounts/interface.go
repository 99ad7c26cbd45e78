package accounts

import (
	"context"

	"github.com/dmitrijs2005/finboard/internal/client/models"
)

// Repository describes CRUD operations for Account objects.
type Repository interface {
	// CreateOrUpdate inserts a new account or replaces an existing one by ID.
	CreateOrUpdate(ctx context.Context, a *models.Account) error

	// ListByOwner returns the owner's accounts in creation order.
	ListByOwner(ctx context.Context, owner string) ([]models.Account, error)

	// GetByIDAndOwner returns common.ErrorNotFound unless the account exists
	// and belongs to owner.
	GetByIDAndOwner(ctx context.Context, id, owner string) (*models.Account, error)

	// DeleteByIDAndOwner returns common.ErrorNotFound when nothing matched.
	DeleteByIDAndOwner(ctx context.Context, id, owner string) error

	// ReassignOwner moves every account of oldOwner to newOwner and returns
	// the number of rows moved.
	ReassignOwner(ctx context.Context, oldOwner, newOwner string) (int64, error)

	ListAll(ctx context.Context) ([]models.Account, error)
}
