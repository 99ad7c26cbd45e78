package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/finboard/internal/client/categorizer"
	"github.com/dmitrijs2005/finboard/internal/common"
	"github.com/dmitrijs2005/finboard/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fake categorizer ----

type fakeCategorizer struct {
	Ret categorizer.Result
	Err error

	Calls  int
	LastIn categorizer.Input
}

func (f *fakeCategorizer) Categorize(_ context.Context, in categorizer.Input) (categorizer.Result, error) {
	f.Calls++
	f.LastIn = in
	return f.Ret, f.Err
}

func TestCategorize_SuggestDoesNotChangeAccount(t *testing.T) {
	accounts := newAccounts(setupDB(t), as("alice"), nil)
	fc := &fakeCategorizer{Ret: categorizer.Result{Category: "Checking", Confidence: 0.87}}
	s := NewCategorizeService(accounts, fc, logging.Nop())
	ctx := context.Background()

	added, err := accounts.Add(ctx, sampleAccount("Daily Spend"))
	require.NoError(t, err)

	res, err := s.Suggest(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, fc.Ret, res)
	assert.Equal(t, categorizer.Input{AccountName: "Daily Spend", AccountDescription: "everyday spending"}, fc.LastIn)

	got, err := accounts.Get(ctx, added.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Category)
	assert.Nil(t, got.CategoryConfidence)
}

func TestCategorize_Apply(t *testing.T) {
	accounts := newAccounts(setupDB(t), as("alice"), nil)
	s := NewCategorizeService(accounts, &fakeCategorizer{}, logging.Nop())
	ctx := context.Background()

	added, err := accounts.Add(ctx, sampleAccount("Daily Spend"))
	require.NoError(t, err)

	updated, err := s.Apply(ctx, added.ID, categorizer.Result{Category: "Checking", Confidence: 0.6})
	require.NoError(t, err)
	assert.Equal(t, "Checking", updated.Category)
	require.NotNil(t, updated.CategoryConfidence)
	assert.InDelta(t, 0.6, *updated.CategoryConfidence, 1e-9)
	assert.True(t, added.Balance.Equal(updated.Balance))
}

func TestCategorize_Errors(t *testing.T) {
	db := setupDB(t)
	accounts := newAccounts(db, as("alice"), nil)
	boom := errors.New("model overloaded")
	fc := &fakeCategorizer{Err: boom}
	s := NewCategorizeService(accounts, fc, logging.Nop())
	ctx := context.Background()

	_, err := s.Suggest(ctx, "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.Zero(t, fc.Calls)

	added, err := accounts.Add(ctx, sampleAccount("Daily Spend"))
	require.NoError(t, err)

	_, err = s.Suggest(ctx, added.ID)
	require.ErrorIs(t, err, boom)

	other := NewCategorizeService(newAccounts(db, as("bob"), nil), fc, logging.Nop())
	_, err = other.Apply(ctx, added.ID, categorizer.Result{Category: "Loan", Confidence: 1})
	require.ErrorIs(t, err, common.ErrorNotFound)
}
