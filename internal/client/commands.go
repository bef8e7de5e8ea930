package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/expense-tracker/internal/validators"
	"github.com/MKhiriev/expense-tracker/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

const amountColumn = 3

func (a *App) signUp(ctx context.Context, args []string) error {
	fs := a.newFlagSet("signup")
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags(map[string]string{"name": *name, "email": *email}); err != nil {
		return err
	}

	secret, err := a.passwordOrPrompt(*password)
	if err != nil {
		return err
	}

	resp, err := a.adapter.SignUp(ctx, models.SignUpRequest{Name: *name, Email: *email, Password: secret})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s: %s <%s> (id %d)\n", resp.Message, resp.User.Name, resp.User.Email, resp.User.ID)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags(map[string]string{"email": *email}); err != nil {
		return err
	}

	secret, err := a.passwordOrPrompt(*password)
	if err != nil {
		return err
	}

	resp, err := a.adapter.Login(ctx, models.LoginRequest{Email: *email, Password: secret})
	if err != nil {
		return err
	}
	if err = a.tokens.Save(resp.Token); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s <%s>\n", resp.User.Name, resp.User.Email)
	return nil
}

func (a *App) logout(_ context.Context, _ []string) error {
	if err := a.tokens.Clear(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) list(ctx context.Context, _ []string) error {
	expenses, err := a.adapter.ListExpenses(ctx)
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		fmt.Fprintln(a.out, "No expenses")
		return nil
	}

	return a.printExpenses(expenses...)
}

func (a *App) add(ctx context.Context, args []string) error {
	fs := a.newFlagSet("add")
	category := fs.String("category", "", "expense category, e.g. Food")
	amount := fs.String("amount", "", "non-negative amount with at most two decimals")
	description := fs.String("description", "", "what the money was spent on")
	date := fs.String("date", "", "expense date as YYYY-MM-DD (default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags(map[string]string{"category": *category, "amount": *amount, "description": *description}); err != nil {
		return err
	}

	value, err := decimal.NewFromString(*amount)
	if err != nil {
		return fmt.Errorf("%w: amount %q is not a number", ErrInvalidArgument, *amount)
	}
	if !validators.IsValidAmount(value) {
		return fmt.Errorf("%w: amount %q must be a non-negative number below 10000000000 with at most 2 decimal places", ErrInvalidArgument, *amount)
	}

	day := a.today()
	if *date != "" {
		if day, err = models.ParseDate(*date); err != nil {
			return fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidArgument, *date)
		}
	}

	expense, err := a.adapter.AddExpense(ctx, models.AddExpenseRequest{
		Category:    *category,
		Amount:      decimal.NewNullDecimal(value),
		Description: *description,
		Date:        day,
	})
	if err != nil {
		return err
	}

	return a.printExpenses(expense)
}

func (a *App) get(ctx context.Context, args []string) error {
	id, err := parseExpenseID(args)
	if err != nil {
		return err
	}

	expense, err := a.adapter.GetExpense(ctx, id)
	if err != nil {
		return err
	}

	return a.printExpenses(expense)
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, err := parseExpenseID(args)
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteExpense(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Expense %d deleted\n", id)
	return nil
}

func (a *App) deleteAll(ctx context.Context, _ []string) error {
	deleted, err := a.adapter.DeleteAllExpenses(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deleted %d expenses\n", deleted)
	return nil
}

func (a *App) health(ctx context.Context, _ []string) error {
	resp, err := a.adapter.Health(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (version %s)\n", resp.Status, resp.Version)
	return nil
}

func (a *App) today() models.Date {
	now := a.now()
	return models.NewDate(now.Year(), now.Month(), now.Day())
}

// printExpenses renders expenses as a bordered table. Colours follow the
// capabilities of a.out, so piped output stays plain text.
func (a *App) printExpenses(expenses ...models.ExpenseResponse) error {
	renderer := lipgloss.NewRenderer(a.out)
	cell := renderer.NewStyle().Padding(0, 1)
	header := cell.Bold(true)
	amount := cell.Align(lipgloss.Right)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(renderer.NewStyle().Faint(true)).
		Headers("ID", "DATE", "CATEGORY", "AMOUNT", "DESCRIPTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == amountColumn:
				return amount
			default:
				return cell
			}
		})
	for _, e := range expenses {
		t.Row(strconv.FormatInt(e.ID, 10), e.Date.String(), e.Category, e.Amount, e.Description)
	}

	_, err := fmt.Fprintln(a.out, t.Render())
	return err
}

func parseExpenseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: expense id", ErrMissingArgument)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: expense id %q", ErrInvalidArgument, args[0])
	}

	return id, nil
}
