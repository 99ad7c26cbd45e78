package users

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/finboard/internal/client/migrations"
	"github.com/dmitrijs2005/finboard/internal/client/models"
	"github.com/dmitrijs2005/finboard/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(context.Background(), db))
	return NewSQLiteRepository(db)
}

func user(id, name string, created time.Time) *models.User {
	return &models.User{ID: id, Username: name, CreatedAt: created}
}

func TestCreateAndGetByUsername(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()
	now := time.UnixMilli(1_700_000_000_123).UTC()

	require.NoError(t, r.Create(ctx, &models.User{ID: "u1", Username: "ama", AvatarDataURL: "data:image/png;base64,AA==", CreatedAt: now}))

	got, err := r.GetByUsername(ctx, "ama")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "ama", got.Username)
	assert.Equal(t, "data:image/png;base64,AA==", got.AvatarDataURL)
	assert.True(t, now.Equal(got.CreatedAt))
}

func TestGetByUsername_NotFound(t *testing.T) {
	r := setupRepo(t)

	_, err := r.GetByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreate_DuplicateUsername(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, user("u1", "ama", time.Now())))
	err := r.Create(ctx, user("u2", "ama", time.Now()))
	require.ErrorIs(t, err, common.ErrDuplicateUsername)
}

func TestList_OrderedByUsername(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()
	base := time.UnixMilli(1_700_000_000_000)

	require.NoError(t, r.Create(ctx, user("u2", "kofi", base)))
	require.NoError(t, r.Create(ctx, user("u1", "ama", base.Add(time.Second))))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ama", list[0].Username)
	assert.Equal(t, "kofi", list[1].Username)
}

func TestList_Empty(t *testing.T) {
	r := setupRepo(t)

	list, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRename(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, user("u1", "ama", time.Now())))
	require.NoError(t, r.Create(ctx, user("u2", "kofi", time.Now())))

	require.ErrorIs(t, r.Rename(ctx, "ama", "kofi"), common.ErrDuplicateUsername)
	require.ErrorIs(t, r.Rename(ctx, "ghost", "yaw"), common.ErrorNotFound)

	require.NoError(t, r.Rename(ctx, "ama", "akua"))
	got, err := r.GetByUsername(ctx, "akua")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	_, err = r.GetByUsername(ctx, "ama")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSetAvatar(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, user("u1", "ama", time.Now())))
	require.NoError(t, r.SetAvatar(ctx, "ama", "data:image/gif;base64,R0lG"))

	got, err := r.GetByUsername(ctx, "ama")
	require.NoError(t, err)
	assert.Equal(t, "data:image/gif;base64,R0lG", got.AvatarDataURL)

	require.ErrorIs(t, r.SetAvatar(ctx, "ghost", "x"), common.ErrorNotFound)
}
