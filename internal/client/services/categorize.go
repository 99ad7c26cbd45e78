package services

import (
	"context"

	"github.com/dmitrijs2005/finboard/internal/client/categorizer"
	"github.com/dmitrijs2005/finboard/internal/client/models"
	"github.com/dmitrijs2005/finboard/internal/logging"
)

// CategorizeService asks the categorizer about an account. Suggest never
// changes stored data; Apply is the explicit user action that does.
type CategorizeService interface {
	Suggest(ctx context.Context, accountID string) (categorizer.Result, error)
	Apply(ctx context.Context, accountID string, res categorizer.Result) (*models.Account, error)
}

type categorizeService struct {
	accounts    AccountService
	categorizer categorizer.Categorizer
	log         logging.Logger
}

func NewCategorizeService(accounts AccountService, c categorizer.Categorizer, log logging.Logger) CategorizeService {
	return &categorizeService{accounts: accounts, categorizer: c, log: log}
}

func (s *categorizeService) Suggest(ctx context.Context, accountID string) (categorizer.Result, error) {
	a, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return categorizer.Result{}, err
	}

	res, err := s.categorizer.Categorize(ctx, categorizer.Input{
		AccountName:        a.AccountName,
		AccountDescription: a.Description,
	})
	if err != nil {
		s.log.Warn(ctx, "categorization failed", "account_id", accountID, "error", err)
		return categorizer.Result{}, err
	}

	s.log.Debug(ctx, "categorization suggested", "account_id", accountID, "category", res.Category, "confidence", res.Confidence)
	return res, nil
}

func (s *categorizeService) Apply(ctx context.Context, accountID string, res categorizer.Result) (*models.Account, error) {
	category := res.Category
	confidence := res.Confidence
	return s.accounts.Update(ctx, accountID, models.AccountUpdate{
		Category:           &category,
		CategoryConfidence: &confidence,
	})
}
