package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/expense-tracker/models"
)

// UserRepository persists user identities. Emails are compared exactly, so
// callers pass them already normalised.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ExpenseRepository persists expense records. Every read and delete is
// scoped by the owner's user ID.
type ExpenseRepository interface {
	CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)

	// FindExpensesByOwner returns the owner's expenses, newest date first.
	// The result is never nil.
	FindExpensesByOwner(ctx context.Context, userID int64) ([]models.Expense, error)

	// FindExpenseByIDAndOwner returns [ErrExpenseNotFound] when no record
	// with expenseID belongs to userID.
	FindExpenseByIDAndOwner(ctx context.Context, expenseID, userID int64) (models.Expense, error)

	// DeleteExpenseByID removes one record owned by userID, or returns
	// [ErrExpenseNotFound] and removes nothing.
	DeleteExpenseByID(ctx context.Context, expenseID, userID int64) error

	// DeleteExpensesByOwner removes all of the owner's records and reports
	// how many were removed.
	DeleteExpensesByOwner(ctx context.Context, userID int64) (int64, error)
}

// ErrorClassificator inspects driver errors of one database dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
