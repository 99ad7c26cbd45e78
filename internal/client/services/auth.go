package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/finboard/internal/client/client"
	"github.com/dmitrijs2005/finboard/internal/client/models"
	"github.com/dmitrijs2005/finboard/internal/client/repositories/kv"
	"github.com/dmitrijs2005/finboard/internal/client/session"
	"github.com/dmitrijs2005/finboard/internal/common"
	"github.com/dmitrijs2005/finboard/internal/dbx"
	"github.com/dmitrijs2005/finboard/internal/logging"
	"github.com/google/uuid"
)

const (
	MinUsernameLen = 3
	MinPasswordLen = 6

	signingKeySize = 32
)

var errNotAuthenticated = fmt.Errorf("%w: log in first", common.ErrNotAuthenticated)

// AuthService is the session store: one logged-in user at a time plus the
// roster of everyone who ever signed up. Passwords are accepted for form's
// sake and are neither stored nor verified.
type AuthService interface {
	SessionProvider

	SignUp(ctx context.Context, username string, password []byte) (*models.User, error)
	LogIn(ctx context.Context, username string, password []byte) (*models.User, error)
	LogOut(ctx context.Context) error
	IsAuthenticated(ctx context.Context) (bool, error)

	// UpdateUsername renames a user and carries their accounts, settings and
	// session along, atomically.
	UpdateUsername(ctx context.Context, oldName, newName string) (*models.User, error)
	UpdatePassword(ctx context.Context, username string, newPassword []byte) error
	UpdateUserAvatar(ctx context.Context, username, avatarDataURL string) (*models.User, error)

	Users(ctx context.Context) ([]models.User, error)
}

type authService struct {
	db  *sql.DB
	log logging.Logger
	ttl time.Duration
	now func() time.Time
}

// NewAuthService constructs an AuthService over db. Sessions expire after
// ttl; zero keeps them until logout.
func NewAuthService(db *sql.DB, log logging.Logger, ttl time.Duration) AuthService {
	return &authService{db: db, log: log, ttl: ttl, now: time.Now}
}

func (a *authService) SignUp(ctx context.Context, username string, password []byte) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username is required", common.ErrValidation)
	}

	u := models.User{ID: uuid.NewString(), Username: username, CreatedAt: a.now().UTC().Truncate(time.Millisecond)}

	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := client.NewRepositories(tx)
		if err := r.Users.Create(ctx, &u); err != nil {
			return err
		}
		_, err := a.startSession(ctx, r, u, a.now())
		return err
	})
	if err != nil {
		a.log.Warn(ctx, "signup failed", "username", username, "error", err)
		return nil, err
	}

	a.log.Info(ctx, "user signed up", "username", u.Username, "user_id", u.ID)
	return &u, nil
}

func (a *authService) LogIn(ctx context.Context, username string, password []byte) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username is required", common.ErrValidation)
	}

	var u *models.User
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := client.NewRepositories(tx)

		var err error
		u, err = lookupUser(ctx, r, username)
		if err != nil {
			return err
		}
		_, err = a.startSession(ctx, r, *u, a.now())
		return err
	})
	if err != nil {
		a.log.Warn(ctx, "login failed", "username", username, "error", err)
		return nil, err
	}

	a.log.Info(ctx, "user logged in", "username", u.Username)
	return u, nil
}

func (a *authService) LogOut(ctx context.Context) error {
	if err := client.NewRepositories(a.db).KV.Delete(ctx, common.LoggedInUserKey); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.log.Info(ctx, "user logged out")
	return nil
}

// CurrentUser reads the session marker. A marker whose token does not verify
// or has expired reads as logged out; it is left in place until the next
// login or logout overwrites it.
func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	r := client.NewRepositories(a.db)

	s, ok, err := kv.GetJSON[models.Session](ctx, r.KV, common.LoggedInUserKey)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return nil, nil
	}

	key, err := r.KV.Get(ctx, common.SessionSigningKeyKey)
	if err != nil {
		return nil, fmt.Errorf("read signing key: %w", err)
	}
	if key == nil {
		a.log.Debug(ctx, "session marker without signing key")
		return nil, nil
	}

	claims, err := session.ParseToken(s.Token, key, a.now())
	if err != nil {
		a.log.Debug(ctx, "session rejected", "username", s.User.Username, "error", err)
		return nil, nil
	}
	if claims.Username() != s.User.Username || claims.UserID != s.User.ID {
		a.log.Debug(ctx, "session token does not match marker", "username", s.User.Username)
		return nil, nil
	}

	return &s.User, nil
}

func (a *authService) IsAuthenticated(ctx context.Context) (bool, error) {
	u, err := a.CurrentUser(ctx)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

func (a *authService) UpdateUsername(ctx context.Context, oldName, newName string) (*models.User, error) {
	if utf8.RuneCountInString(newName) < MinUsernameLen {
		return nil, fmt.Errorf("%w: username must be at least %d characters", common.ErrValidation, MinUsernameLen)
	}
	if newName == oldName {
		return nil, fmt.Errorf("%w: new username is the same as the current one", common.ErrValidation)
	}

	var (
		u     *models.User
		moved int64
	)
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := client.NewRepositories(tx)

		if _, err := r.Users.GetByUsername(ctx, newName); err == nil {
			return fmt.Errorf("%w: %s", common.ErrDuplicateUsername, newName)
		} else if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		var err error
		u, err = lookupUser(ctx, r, oldName)
		if err != nil {
			return err
		}

		if err := r.Users.Rename(ctx, oldName, newName); err != nil {
			return err
		}
		u.Username = newName

		moved, err = r.Accounts.ReassignOwner(ctx, oldName, newName)
		if err != nil {
			return err
		}

		if err := moveKey(ctx, r.KV, common.UserSettingsKey(oldName), common.UserSettingsKey(newName)); err != nil {
			return err
		}

		return a.refreshSession(ctx, r, oldName, *u)
	})
	if err != nil {
		a.log.Warn(ctx, "rename failed", "username", oldName, "new_username", newName, "error", err)
		return nil, err
	}

	a.log.Info(ctx, "user renamed", "username", oldName, "new_username", newName, "accounts_moved", moved)
	return u, nil
}

func (a *authService) UpdatePassword(ctx context.Context, username string, newPassword []byte) error {
	if utf8.RuneCount(newPassword) < MinPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, MinPasswordLen)
	}
	a.log.Info(ctx, "password change accepted", "username", username)
	return nil
}

func (a *authService) UpdateUserAvatar(ctx context.Context, username, avatarDataURL string) (*models.User, error) {
	var u *models.User
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := client.NewRepositories(tx)

		if err := r.Users.SetAvatar(ctx, username, avatarDataURL); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return fmt.Errorf("%w: %s", common.ErrUserNotFound, username)
			}
			return err
		}

		var err error
		u, err = lookupUser(ctx, r, username)
		if err != nil {
			return err
		}
		return a.refreshSession(ctx, r, username, *u)
	})
	if err != nil {
		a.log.Warn(ctx, "avatar update failed", "username", username, "error", err)
		return nil, err
	}

	a.log.Info(ctx, "avatar updated", "username", username)
	return u, nil
}

func (a *authService) Users(ctx context.Context) ([]models.User, error) {
	list, err := client.NewRepositories(a.db).Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return list, nil
}

// startSession writes a fresh session marker for u.
func (a *authService) startSession(ctx context.Context, r *client.Repositories, u models.User, startedAt time.Time) (*models.Session, error) {
	key, err := signingKey(ctx, r.KV)
	if err != nil {
		return nil, err
	}

	token, err := session.GenerateToken(u.ID, u.Username, key, a.ttl, a.now())
	if err != nil {
		return nil, err
	}

	s := &models.Session{Token: token, User: u, StartedAt: startedAt.UTC()}
	if err := kv.SetJSON(ctx, r.KV, common.LoggedInUserKey, s); err != nil {
		return nil, fmt.Errorf("write session: %w", err)
	}
	return s, nil
}

// refreshSession rewrites the marker with u when the session belongs to
// username, keeping the original start time. Other sessions are untouched.
func (a *authService) refreshSession(ctx context.Context, r *client.Repositories, username string, u models.User) error {
	s, ok, err := kv.GetJSON[models.Session](ctx, r.KV, common.LoggedInUserKey)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	if !ok || s.User.Username != username {
		return nil
	}
	_, err = a.startSession(ctx, r, u, s.StartedAt)
	return err
}

// signingKey returns the HMAC key for session tokens, creating it on first use.
func signingKey(ctx context.Context, store kv.Repository) ([]byte, error) {
	key, err := store.Get(ctx, common.SessionSigningKeyKey)
	if err != nil {
		return nil, fmt.Errorf("read signing key: %w", err)
	}
	if key != nil {
		return key, nil
	}

	key = common.GenerateRandByteArray(signingKeySize)
	if err := store.Set(ctx, common.SessionSigningKeyKey, key); err != nil {
		return nil, fmt.Errorf("write signing key: %w", err)
	}
	return key, nil
}

func lookupUser(ctx context.Context, r *client.Repositories, username string) (*models.User, error) {
	u, err := r.Users.GetByUsername(ctx, username)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("%w: %s", common.ErrUserNotFound, username)
	}
	return u, err
}

func moveKey(ctx context.Context, store kv.Repository, from, to string) error {
	raw, err := store.Get(ctx, from)
	if err != nil || raw == nil {
		return err
	}
	if err := store.Set(ctx, to, raw); err != nil {
		return err
	}
	return store.Delete(ctx, from)
}
