package cli

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/finboard/internal/client/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatBalance(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"1234.5", "GHS", "GH₵1,234.50"},
		{"0", "", "GH₵0.00"},
		{"1000000", "GHS", "GH₵1,000,000.00"},
		{"10.005", "GHS", "GH₵10.01"},
		{"12.3", "XYZ", "XYZ 12.30"},
		{"100000000000000000000", "GHS", "GH₵100,000,000,000,000,000,000.00"},
		{"999.999", "GHS", "GH₵1,000.00"},
		{"-1234.5", "GHS", "-GH₵1,234.50"},
	}
	for _, tt := range tests {
		t.Run(tt.amount+tt.currency, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBalance(decimal.RequireFromString(tt.amount), tt.currency))
		})
	}
}

func TestAccountsMarkdown(t *testing.T) {
	conf := 0.87
	md := accountsMarkdown([]models.Account{
		{ID: "a1", AccountName: "Main|Daily", BankName: "GCB", AccountType: models.AccountTypeChecking,
			Balance: decimal.RequireFromString("100"), CurrencyCode: "GHS", Category: "Checking", CategoryConfidence: &conf},
		{ID: "a2", AccountName: "Rainy Day", BankName: "Absa", AccountType: models.AccountTypeSavings,
			Balance: decimal.RequireFromString("50.25"), CurrencyCode: "GHS"},
	})

	assert.Contains(t, md, `Main\|Daily`)
	assert.Contains(t, md, "GH₵100.00")
	assert.Contains(t, md, "Checking (87%)")
	assert.Contains(t, md, "**GH₵150.25**")
	assert.Equal(t, 5, strings.Count(md, "\n"))
}

func TestAccountsMarkdown_Empty(t *testing.T) {
	assert.Contains(t, accountsMarkdown(nil), "No accounts yet")
}

func TestAccountMarkdown(t *testing.T) {
	md := accountMarkdown(models.Account{
		ID: "a1", AccountName: "Main", BankName: "GCB", AccountType: models.AccountTypeLoan,
		Balance: decimal.RequireFromString("9"), CurrencyCode: "GHS", Country: "GH", Description: "car loan",
	})
	assert.Contains(t, md, "## Main")
	assert.Contains(t, md, "car loan")
	assert.NotContains(t, md, "Category")
}

func TestRenderMarkdown_PlainStyle(t *testing.T) {
	out := renderMarkdown("| A | B |\n|---|---|\n| x | y |\n", "notty")
	assert.Contains(t, out, "x")
	assert.Contains(t, out, "y")
}
