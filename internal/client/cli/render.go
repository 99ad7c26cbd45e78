package cli

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/dmitrijs2005/finboard/internal/client/models"
	"github.com/shopspring/decimal"
)

// FormatBalance renders amount in currency, e.g. "GH₵1,234.50", using the
// separators, fraction digits and template of the money library's currency.
// Codes the money library does not know are rendered as "<code> <amount>".
func FormatBalance(amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = models.DefaultCountry.CurrencyCode
	}
	cur := money.GetCurrency(currency)
	if cur == nil {
		return currency + " " + amount.StringFixed(2)
	}

	symbol := cur.Grapheme
	if currency == models.DefaultCountry.CurrencyCode {
		symbol = models.DefaultCountry.CurrencySymbol
	}

	fixed := amount.Abs().StringFixed(int32(cur.Fraction))
	whole, frac, _ := strings.Cut(fixed, ".")

	s := groupThousands(whole, cur.Thousand)
	if frac != "" {
		s += cur.Decimal + frac
	}
	s = strings.Replace(cur.Template, "1", s, 1)
	s = strings.Replace(s, "$", symbol, 1)

	if amount.Round(int32(cur.Fraction)).IsNegative() {
		s = "-" + s
	}
	return s
}

func groupThousands(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// accountsMarkdown renders accounts as a markdown table with a total row.
func accountsMarkdown(accounts []models.Account) string {
	if len(accounts) == 0 {
		return "_No accounts yet. Use `add` to create one._\n"
	}

	var b strings.Builder
	b.WriteString("| ID | Account | Bank | Type | Balance | Category |\n")
	b.WriteString("|---|---|---|---|---:|---|\n")

	totals := map[string]decimal.Decimal{}
	var order []string
	for _, a := range accounts {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			cell(a.ID), cell(a.AccountName), cell(a.BankName), cell(string(a.AccountType)),
			FormatBalance(a.Balance, a.CurrencyCode), cell(categoryLabel(a)))

		if _, ok := totals[a.CurrencyCode]; !ok {
			order = append(order, a.CurrencyCode)
		}
		totals[a.CurrencyCode] = totals[a.CurrencyCode].Add(a.Balance)
	}
	for _, code := range order {
		fmt.Fprintf(&b, "| | **Total** | | | **%s** | |\n", FormatBalance(totals[code], code))
	}
	return b.String()
}

// accountMarkdown renders a single account as a definition list.
func accountMarkdown(a models.Account) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", a.AccountName)
	fmt.Fprintf(&b, "- **ID:** `%s`\n", a.ID)
	fmt.Fprintf(&b, "- **Bank:** %s\n", a.BankName)
	fmt.Fprintf(&b, "- **Type:** %s\n", a.AccountType)
	fmt.Fprintf(&b, "- **Balance:** %s\n", FormatBalance(a.Balance, a.CurrencyCode))
	fmt.Fprintf(&b, "- **Country:** %s\n", a.Country)
	if a.Description != "" {
		fmt.Fprintf(&b, "- **Description:** %s\n", a.Description)
	}
	if a.Category != "" {
		fmt.Fprintf(&b, "- **Category:** %s\n", categoryLabel(a))
	}
	if !a.UpdatedAt.IsZero() {
		fmt.Fprintf(&b, "- **Updated:** %s\n", a.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	return b.String()
}

func categoryLabel(a models.Account) string {
	if a.Category == "" {
		return ""
	}
	if a.CategoryConfidence == nil {
		return a.Category
	}
	return fmt.Sprintf("%s (%.0f%%)", a.Category, *a.CategoryConfidence*100)
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// renderMarkdown renders md for the terminal with the given glamour style.
// "auto" picks a style from the terminal background. The raw markdown is
// returned when rendering fails.
func renderMarkdown(md, style string) string {
	opt := glamour.WithStandardStyle(style)
	if style == "" || style == "auto" {
		opt = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(120))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
