package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/expense-tracker/internal/validators"
	"github.com/MKhiriev/expense-tracker/models"
)

// ErrInvalidOwner is returned when an operation is called without an
// authorized owner. Handlers never produce it for a valid session.
var ErrInvalidOwner = errors.New("owner is not specified")

// ExpenseValidationService validates input before delegating to the
// wrapped ExpenseService.
type ExpenseValidationService struct {
	inner     ExpenseService
	validator validators.Validator
}

func NewExpenseValidationService(validator validators.Validator) ExpenseServiceWrapper {
	return &ExpenseValidationService{
		validator: validator,
	}
}

func (v *ExpenseValidationService) AddExpense(ctx context.Context, ownerID int64, request models.AddExpenseRequest) (models.Expense, error) {
	if ownerID <= 0 {
		return models.Expense{}, ErrInvalidOwner
	}

	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Expense{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.AddExpense(ctx, ownerID, request)
}

func (v *ExpenseValidationService) ListExpenses(ctx context.Context, ownerID int64) ([]models.Expense, error) {
	if ownerID <= 0 {
		return nil, ErrInvalidOwner
	}

	return v.inner.ListExpenses(ctx, ownerID)
}

func (v *ExpenseValidationService) GetExpense(ctx context.Context, ownerID, expenseID int64) (models.Expense, error) {
	if ownerID <= 0 {
		return models.Expense{}, ErrInvalidOwner
	}
	// ids are positive, so nothing can match
	if expenseID <= 0 {
		return models.Expense{}, ErrExpenseNotFound
	}

	return v.inner.GetExpense(ctx, ownerID, expenseID)
}

func (v *ExpenseValidationService) DeleteExpense(ctx context.Context, ownerID, expenseID int64) error {
	if ownerID <= 0 {
		return ErrInvalidOwner
	}
	if expenseID <= 0 {
		return ErrExpenseNotFound
	}

	return v.inner.DeleteExpense(ctx, ownerID, expenseID)
}

func (v *ExpenseValidationService) DeleteAllExpenses(ctx context.Context, ownerID int64) (int64, error) {
	if ownerID <= 0 {
		return 0, ErrInvalidOwner
	}

	return v.inner.DeleteAllExpenses(ctx, ownerID)
}

func (v *ExpenseValidationService) Wrap(wrapped ExpenseService) ExpenseService {
	v.inner = wrapped
	return v
}
