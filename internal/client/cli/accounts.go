package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/finboard/internal/client/models"
	"github.com/dmitrijs2005/finboard/internal/common"
	"github.com/shopspring/decimal"
)

func idArg(args []string, cmd string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: %s <account id>", errUsage, cmd)
	}
	return args[0], nil
}

// List prints the session user's accounts as a table.
func (a *App) List(ctx context.Context, _ []string) error {
	if !a.isLoggedIn(ctx) {
		return common.ErrNotAuthenticated
	}

	accounts, err := a.accounts.List(ctx)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		printlnFn("No accounts yet. Use 'add' to create one.")
		return nil
	}

	a.printMarkdown(accountsMarkdown(accounts))
	return nil
}

// Show prints one account in detail.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := idArg(args, "show")
	if err != nil {
		return err
	}

	acc, err := a.accounts.Get(ctx, id)
	if err != nil {
		return err
	}

	a.printMarkdown(accountMarkdown(*acc))
	return nil
}

// Add prompts for the account fields and stores a new account.
func (a *App) Add(ctx context.Context, _ []string) error {
	if !a.isLoggedIn(ctx) {
		return common.ErrNotAuthenticated
	}

	var acc models.Account
	var err error

	if acc.AccountName, err = a.prompt("Account name"); err != nil {
		return err
	}
	if acc.BankName, err = a.prompt("Bank name"); err != nil {
		return err
	}
	if acc.Balance, err = a.promptBalance(nil); err != nil {
		return err
	}
	if acc.AccountType, err = a.promptType(nil); err != nil {
		return err
	}
	if acc.Description, err = a.prompt("Description (optional)"); err != nil {
		return err
	}

	created, err := a.accounts.Add(ctx, acc)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Added account %s (%s).", created.AccountName, created.ID))
	return nil
}

// Edit prompts for each field showing the current value; an empty answer
// keeps it.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := idArg(args, "edit")
	if err != nil {
		return err
	}

	acc, err := a.accounts.Get(ctx, id)
	if err != nil {
		return err
	}

	var upd models.AccountUpdate

	if upd.AccountName, err = a.promptKeep("Account name", acc.AccountName); err != nil {
		return err
	}
	if upd.BankName, err = a.promptKeep("Bank name", acc.BankName); err != nil {
		return err
	}
	balance, err := a.promptBalance(&acc.Balance)
	if err != nil {
		return err
	}
	if !balance.Equal(acc.Balance) {
		upd.Balance = &balance
	}
	t, err := a.promptType(&acc.AccountType)
	if err != nil {
		return err
	}
	if t != acc.AccountType {
		upd.AccountType = &t
	}
	if upd.Description, err = a.promptKeep("Description", acc.Description); err != nil {
		return err
	}

	if upd.IsEmpty() {
		printlnFn("Nothing changed.")
		return nil
	}

	updated, err := a.accounts.Update(ctx, id, upd)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Updated account %s.", updated.AccountName))
	return nil
}

// Delete removes an account after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := idArg(args, "delete")
	if err != nil {
		return err
	}

	acc, err := a.accounts.Get(ctx, id)
	if err != nil {
		return err
	}

	ok, err := getConfirmation(a.reader, fmt.Sprintf("Delete %s at %s?", acc.AccountName, acc.BankName), a.out)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.accounts.Delete(ctx, id); err != nil {
		return err
	}

	printlnFn("Deleted.")
	return nil
}

// Categorize asks the categorizer for a suggestion and stores it when the
// user accepts.
func (a *App) Categorize(ctx context.Context, args []string) error {
	id, err := idArg(args, "categorize")
	if err != nil {
		return err
	}

	res, err := a.categorize.Suggest(ctx, id)
	if err != nil {
		return err
	}

	ok, err := getConfirmation(a.reader, fmt.Sprintf("Suggested category: %s (%.0f%% confident). Apply?", res.Category, res.Confidence*100), a.out)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled.")
		return nil
	}

	if _, err := a.categorize.Apply(ctx, id, res); err != nil {
		return err
	}

	printlnFn("Category saved.")
	return nil
}

// promptKeep returns nil when the answer is empty or equals current.
func (a *App) promptKeep(label, current string) (*string, error) {
	s, err := a.prompt(fmt.Sprintf("%s [%s]", label, current))
	if err != nil {
		return nil, err
	}
	if s == "" || s == current {
		return nil, nil
	}
	return &s, nil
}

// promptBalance reads a decimal balance; an empty answer returns current
// when set. Invalid input is asked again.
func (a *App) promptBalance(current *decimal.Decimal) (decimal.Decimal, error) {
	label := "Balance"
	if current != nil {
		label = fmt.Sprintf("Balance [%s]", current.String())
	}

	for {
		s, err := a.prompt(label)
		if err != nil {
			return decimal.Zero, err
		}
		if s == "" && current != nil {
			return *current, nil
		}

		d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
		if err == nil {
			return d, nil
		}
		printlnFn("Please enter a number, e.g. 1250.50")
	}
}

// promptType reads an account type; an empty answer returns current when set.
func (a *App) promptType(current *models.AccountType) (models.AccountType, error) {
	names := make([]string, 0, len(models.AccountTypes))
	for _, t := range models.AccountTypes {
		names = append(names, string(t))
	}
	label := fmt.Sprintf("Type (%s)", strings.Join(names, ", "))
	if current != nil {
		label = fmt.Sprintf("Type [%s]", *current)
	}

	for {
		s, err := a.prompt(label)
		if err != nil {
			return "", err
		}
		if s == "" && current != nil {
			return *current, nil
		}

		t, err := models.ParseAccountType(s)
		if err == nil {
			return t, nil
		}
		printlnFn(err.Error())
	}
}
