package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/finboard/internal/client/models"
	"github.com/dmitrijs2005/finboard/internal/common"
	"github.com/dmitrijs2005/finboard/internal/dbx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, u *models.User) error {
	query := `insert into users (id, username, avatar_data_url, created_at) values (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Username, u.AvatarDataURL, u.CreatedAt.UnixMilli())
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", common.ErrDuplicateUsername, u.Username)
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `select id, username, avatar_data_url, created_at from users where username=?`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	return u, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.User, error) {
	query := `select id, username, avatar_data_url, created_at from users order by username`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Rename(ctx context.Context, oldName, newName string) error {
	res, err := r.db.ExecContext(ctx, `update users set username=? where username=?`, newName, oldName)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", common.ErrDuplicateUsername, newName)
	}
	if err != nil {
		return fmt.Errorf("failed to rename user: %w", err)
	}
	return expectOne(res)
}

func (r *SQLiteRepository) SetAvatar(ctx context.Context, username, dataURL string) error {
	res, err := r.db.ExecContext(ctx, `update users set avatar_data_url=? where username=?`, dataURL, username)
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}
	return expectOne(res)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*models.User, error) {
	var u models.User
	var created int64
	if err := s.Scan(&u.ID, &u.Username, &u.AvatarDataURL, &created); err != nil {
		return nil, err
	}
	u.CreatedAt = time.UnixMilli(created).UTC()
	return &u, nil
}

func expectOne(res sql.Result) error {
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}
