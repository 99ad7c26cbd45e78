package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/finboard/internal/client/client"
	"github.com/dmitrijs2005/finboard/internal/client/models"
	"github.com/dmitrijs2005/finboard/internal/common"
	"github.com/dmitrijs2005/finboard/internal/dbx"
	"github.com/dmitrijs2005/finboard/internal/logging"
	"github.com/google/uuid"
)

// AccountService manages the bank accounts of the session user. Accounts of
// other users are invisible: reading, editing or deleting them behaves as if
// they did not exist.
type AccountService interface {
	List(ctx context.Context) ([]models.Account, error)

	// Add stores a new account for the session user. ID, owner, currency and
	// country are assigned by the service whatever the input carries.
	Add(ctx context.Context, data models.Account) (*models.Account, error)

	Get(ctx context.Context, id string) (*models.Account, error)

	// Update merges the supplied fields into the account. Currency is reset
	// to the default locale and the stored country is kept.
	Update(ctx context.Context, id string, upd models.AccountUpdate) (*models.Account, error)

	Delete(ctx context.Context, id string) error
}

type accountService struct {
	db      *sql.DB
	session SessionProvider
	log     logging.Logger
	now     func() time.Time
}

func NewAccountService(db *sql.DB, session SessionProvider, log logging.Logger) AccountService {
	return &accountService{db: db, session: session, log: log, now: time.Now}
}

func (s *accountService) List(ctx context.Context) ([]models.Account, error) {
	u, err := s.session.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return []models.Account{}, nil
	}

	rows, err := client.NewRepositories(s.db).Accounts.ListByOwner(ctx, u.Username)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	result := make([]models.Account, 0, len(rows))
	for _, a := range rows {
		a.BackfillLocale()
		result = append(result, a)
	}
	return result, nil
}

func (s *accountService) Add(ctx context.Context, data models.Account) (*models.Account, error) {
	owner, err := currentUsername(ctx, s.session)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	a := data
	a.ID = uuid.NewString()
	a.UserID = owner
	a.CurrencyCode = models.DefaultCountry.CurrencyCode
	a.Country = models.DefaultCountry.Code
	a.CreatedAt = now
	a.UpdatedAt = now

	if err := a.Validate(); err != nil {
		return nil, err
	}

	if err := client.NewRepositories(s.db).Accounts.CreateOrUpdate(ctx, &a); err != nil {
		s.log.Error(ctx, "add account failed", "username", owner, "error", err)
		return nil, fmt.Errorf("add account: %w", err)
	}

	s.log.Info(ctx, "account added", "username", owner, "account_id", a.ID)
	return &a, nil
}

func (s *accountService) Get(ctx context.Context, id string) (*models.Account, error) {
	owner, err := currentUsername(ctx, s.session)
	if err != nil {
		return nil, err
	}

	a, err := getOwned(ctx, client.NewRepositories(s.db), id, owner)
	if err != nil {
		return nil, err
	}
	a.BackfillLocale()
	return a, nil
}

func (s *accountService) Update(ctx context.Context, id string, upd models.AccountUpdate) (*models.Account, error) {
	owner, err := currentUsername(ctx, s.session)
	if err != nil {
		return nil, err
	}

	var updated models.Account
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := client.NewRepositories(tx)

		existing, err := getOwned(ctx, r, id, owner)
		if err != nil {
			return err
		}

		updated = upd.Merge(*existing)
		updated.CurrencyCode = models.DefaultCountry.CurrencyCode
		updated.Country = existing.Country
		if updated.Country == "" {
			updated.Country = models.DefaultCountry.Code
		}
		updated.UpdatedAt = s.now().UTC().Truncate(time.Millisecond)

		if err := updated.Validate(); err != nil {
			return err
		}
		return r.Accounts.CreateOrUpdate(ctx, &updated)
	})
	if err != nil {
		s.log.Warn(ctx, "update account failed", "username", owner, "account_id", id, "error", err)
		return nil, err
	}

	s.log.Info(ctx, "account updated", "username", owner, "account_id", id)
	return &updated, nil
}

func (s *accountService) Delete(ctx context.Context, id string) error {
	owner, err := currentUsername(ctx, s.session)
	if err != nil {
		return err
	}

	err = client.NewRepositories(s.db).Accounts.DeleteByIDAndOwner(ctx, id, owner)
	if errors.Is(err, common.ErrorNotFound) {
		return accountNotFound(id)
	}
	if err != nil {
		s.log.Error(ctx, "delete account failed", "username", owner, "account_id", id, "error", err)
		return fmt.Errorf("delete account: %w", err)
	}

	s.log.Info(ctx, "account deleted", "username", owner, "account_id", id)
	return nil
}

func getOwned(ctx context.Context, r *client.Repositories, id, owner string) (*models.Account, error) {
	a, err := r.Accounts.GetByIDAndOwner(ctx, id, owner)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, accountNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

func accountNotFound(id string) error {
	return fmt.Errorf("account %s: %w", id, common.ErrorNotFound)
}
