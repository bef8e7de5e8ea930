package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ExpenseServiceWrapper

import (
	"context"

	"github.com/MKhiriev/expense-tracker/models"
)

// AuthService registers users, verifies credentials and issues and checks
// session tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.SignUpRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// Authorize validates a raw session token and returns the session it
	// grants. It never consults the store.
	Authorize(ctx context.Context, tokenString string) (models.Session, error)
}

// ExpenseService manages the ledger of a single owner. ownerID always comes
// from an authorized session.
type ExpenseService interface {
	AddExpense(ctx context.Context, ownerID int64, request models.AddExpenseRequest) (models.Expense, error)
	ListExpenses(ctx context.Context, ownerID int64) ([]models.Expense, error)
	GetExpense(ctx context.Context, ownerID, expenseID int64) (models.Expense, error)
	DeleteExpense(ctx context.Context, ownerID, expenseID int64) error
	DeleteAllExpenses(ctx context.Context, ownerID int64) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ExpenseServiceWrapper defines middleware composition for ExpenseService.
// Implementations wrap an existing ExpenseService to add behavior such as
// logging or validating.
type ExpenseServiceWrapper interface {
	Wrap(ExpenseService) ExpenseService // returns a decorated ExpenseService applying additional behavior
}
