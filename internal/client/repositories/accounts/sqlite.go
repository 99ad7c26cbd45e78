package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/finboard/internal/client/models"
	"github.com/dmitrijs2005/finboard/internal/common"
	"github.com/dmitrijs2005/finboard/internal/dbx"
)

const selectColumns = `select id, user_id, account_name, bank_name, balance, account_type,
	currency_code, country, description, category, category_confidence, created_at, updated_at
	from accounts`

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, a *models.Account) error {
	query := `insert into accounts (id, user_id, account_name, bank_name, balance, account_type,
			currency_code, country, description, category, category_confidence, created_at, updated_at)
		values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		on conflict(id) do update set user_id = excluded.user_id,
			account_name = excluded.account_name,
			bank_name = excluded.bank_name,
			balance = excluded.balance,
			account_type = excluded.account_type,
			currency_code = excluded.currency_code,
			country = excluded.country,
			description = excluded.description,
			category = excluded.category,
			category_confidence = excluded.category_confidence,
			updated_at = excluded.updated_at
	`
	var confidence sql.NullFloat64
	if a.CategoryConfidence != nil {
		confidence = sql.NullFloat64{Float64: *a.CategoryConfidence, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.UserID, a.AccountName, a.BankName, a.Balance.String(), string(a.AccountType),
		a.CurrencyCode, a.Country, a.Description, a.Category, confidence,
		a.CreatedAt.UnixMilli(), a.UpdatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to upsert account: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListByOwner(ctx context.Context, owner string) ([]models.Account, error) {
	return r.list(ctx, selectColumns+` where user_id=? order by created_at, id`, owner)
}

func (r *SQLiteRepository) ListAll(ctx context.Context) ([]models.Account, error) {
	return r.list(ctx, selectColumns+` order by user_id, created_at, id`)
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]models.Account, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select accounts: %w", err)
	}
	defer rows.Close()

	var result []models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByIDAndOwner(ctx context.Context, id, owner string) (*models.Account, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` where id=? and user_id=?`, id, owner)
	a, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select account: %w", err)
	}
	return a, nil
}

func (r *SQLiteRepository) DeleteByIDAndOwner(ctx context.Context, id, owner string) error {
	res, err := r.db.ExecContext(ctx, `delete from accounts where id=? and user_id=?`, id, owner)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) ReassignOwner(ctx context.Context, oldOwner, newOwner string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `update accounts set user_id=? where user_id=?`, newOwner, oldOwner)
	if err != nil {
		return 0, fmt.Errorf("failed to reassign accounts: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*models.Account, error) {
	var (
		a                models.Account
		accountType      string
		confidence       sql.NullFloat64
		created, updated int64
	)
	err := s.Scan(&a.ID, &a.UserID, &a.AccountName, &a.BankName, &a.Balance, &accountType,
		&a.CurrencyCode, &a.Country, &a.Description, &a.Category, &confidence, &created, &updated)
	if err != nil {
		return nil, err
	}
	a.AccountType = models.AccountType(accountType)
	if confidence.Valid {
		c := confidence.Float64
		a.CategoryConfidence = &c
	}
	a.CreatedAt = time.UnixMilli(created).UTC()
	a.UpdatedAt = time.UnixMilli(updated).UTC()
	return &a, nil
}
