package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/finboard/internal/common"
	"github.com/shopspring/decimal"
)

// AccountType classifies a bank account.
type AccountType string

const (
	AccountTypeChecking   AccountType = "Checking"
	AccountTypeSavings    AccountType = "Savings"
	AccountTypeCreditCard AccountType = "Credit Card"
	AccountTypeInvestment AccountType = "Investment"
	AccountTypeLoan       AccountType = "Loan"
	AccountTypeMortgage   AccountType = "Mortgage"
	AccountTypeOther      AccountType = "Other"
)

// AccountTypes lists every valid AccountType in display order.
var AccountTypes = []AccountType{
	AccountTypeChecking,
	AccountTypeSavings,
	AccountTypeCreditCard,
	AccountTypeInvestment,
	AccountTypeLoan,
	AccountTypeMortgage,
	AccountTypeOther,
}

func (t AccountType) Valid() bool {
	for _, v := range AccountTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ParseAccountType matches s against the known types ignoring case, spaces,
// dashes and underscores, so "credit_card" and "creditcard" both resolve to
// AccountTypeCreditCard.
func ParseAccountType(s string) (AccountType, error) {
	want := normalizeType(s)
	for _, v := range AccountTypes {
		if normalizeType(string(v)) == want {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: unknown account type %q", common.ErrValidation, s)
}

func normalizeType(s string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}

// MinAccountTextLen is the minimum length, in runes, of account and bank names.
const MinAccountTextLen = 2

// Account is a financial account owned by exactly one user. UserID holds the
// owner's username; ownership is checked by string equality on read.
type Account struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"userId"`
	AccountName        string          `json:"accountName"`
	BankName           string          `json:"bankName"`
	Balance            decimal.Decimal `json:"balance"`
	AccountType        AccountType     `json:"accountType"`
	CurrencyCode       string          `json:"currencyCode,omitempty"`
	Country            string          `json:"country,omitempty"`
	Description        string          `json:"description,omitempty"`
	Category           string          `json:"category,omitempty"`
	CategoryConfidence *float64        `json:"categoryConfidence,omitempty"`
	CreatedAt          time.Time       `json:"createdAt,omitzero"`
	UpdatedAt          time.Time       `json:"updatedAt,omitzero"`
}

// Validate checks the user-editable fields.
func (a Account) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(a.AccountName)) < MinAccountTextLen {
		return fmt.Errorf("%w: account name must be at least %d characters", common.ErrValidation, MinAccountTextLen)
	}
	if utf8.RuneCountInString(strings.TrimSpace(a.BankName)) < MinAccountTextLen {
		return fmt.Errorf("%w: bank name must be at least %d characters", common.ErrValidation, MinAccountTextLen)
	}
	if a.Balance.IsNegative() {
		return fmt.Errorf("%w: balance must not be negative", common.ErrValidation)
	}
	if !a.AccountType.Valid() {
		return fmt.Errorf("%w: unknown account type %q", common.ErrValidation, a.AccountType)
	}
	if c := a.CategoryConfidence; c != nil && (*c < 0 || *c > 1) {
		return fmt.Errorf("%w: category confidence must be within [0, 1]", common.ErrValidation)
	}
	return nil
}

// BackfillLocale fills empty currency and country from the default locale.
// Records created before those fields existed are read through it.
func (a *Account) BackfillLocale() {
	if a.CurrencyCode == "" {
		a.CurrencyCode = DefaultCountry.CurrencyCode
	}
	if a.Country == "" {
		a.Country = DefaultCountry.Code
	}
}

// AccountUpdate is a partial update; nil fields are left untouched.
type AccountUpdate struct {
	AccountName        *string
	BankName           *string
	Balance            *decimal.Decimal
	AccountType        *AccountType
	Description        *string
	CurrencyCode       *string
	Country            *string
	Category           *string
	CategoryConfidence *float64
}

// Merge returns a copy of a with the supplied fields applied.
func (u AccountUpdate) Merge(a Account) Account {
	if u.AccountName != nil {
		a.AccountName = *u.AccountName
	}
	if u.BankName != nil {
		a.BankName = *u.BankName
	}
	if u.Balance != nil {
		a.Balance = *u.Balance
	}
	if u.AccountType != nil {
		a.AccountType = *u.AccountType
	}
	if u.Description != nil {
		a.Description = *u.Description
	}
	if u.CurrencyCode != nil {
		a.CurrencyCode = *u.CurrencyCode
	}
	if u.Country != nil {
		a.Country = *u.Country
	}
	if u.Category != nil {
		a.Category = *u.Category
	}
	if u.CategoryConfidence != nil {
		c := *u.CategoryConfidence
		a.CategoryConfidence = &c
	}
	return a
}

// IsEmpty reports whether u carries no field at all.
func (u AccountUpdate) IsEmpty() bool {
	return u == AccountUpdate{}
}
