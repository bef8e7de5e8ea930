package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/expense-tracker/internal/mock"
	"github.com/MKhiriev/expense-tracker/internal/validators"
	"github.com/MKhiriev/expense-tracker/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestValidationSvc(t *testing.T) (ExpenseService, *mock.MockExpenseService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inner := mock.NewMockExpenseService(ctrl)
	return NewExpenseValidationService(validators.NewRequestValidator()).Wrap(inner), inner
}

func TestExpenseValidationService_AddExpense_Valid_Delegates(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	req := lunchRequest()

	inner.EXPECT().AddExpense(gomock.Any(), int64(1), req).Return(models.Expense{ID: 5}, nil)

	expense, err := svc.AddExpense(context.Background(), 1, req)

	require.NoError(t, err)
	assert.Equal(t, int64(5), expense.ID)
}

func TestExpenseValidationService_AddExpense_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.AddExpenseRequest)
		message string
	}{
		{
			name:    "missing category",
			mutate:  func(r *models.AddExpenseRequest) { r.Category = "" },
			message: "category is required",
		},
		{
			name:    "blank description",
			mutate:  func(r *models.AddExpenseRequest) { r.Description = "  " },
			message: "description is required",
		},
		{
			name:    "missing amount",
			mutate:  func(r *models.AddExpenseRequest) { r.Amount = decimal.NullDecimal{} },
			message: "amount is required",
		},
		{
			name:    "negative amount",
			mutate:  func(r *models.AddExpenseRequest) { r.Amount = decimal.NewNullDecimal(decimal.RequireFromString("-1")) },
			message: "amount must be a non-negative number with at most 2 decimal places",
		},
		{
			name:    "three decimals",
			mutate:  func(r *models.AddExpenseRequest) { r.Amount = decimal.NewNullDecimal(decimal.RequireFromString("1.005")) },
			message: "amount must be a non-negative number with at most 2 decimal places",
		},
		{
			name:    "missing date",
			mutate:  func(r *models.AddExpenseRequest) { r.Date = models.Date{} },
			message: "date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// inner has no expectations: it must not be reached
			svc, _ := newTestValidationSvc(t)
			req := lunchRequest()
			tt.mutate(&req)

			_, err := svc.AddExpense(context.Background(), 1, req)

			require.ErrorIs(t, err, ErrInvalidDataProvided)
			var validationErrors validators.ValidationErrors
			require.True(t, errors.As(err, &validationErrors))
			assert.Contains(t, []string(validationErrors), tt.message)
		})
	}
}

func TestExpenseValidationService_ZeroAmountIsValid(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	req := lunchRequest()
	req.Amount = decimal.NewNullDecimal(decimal.Zero)

	inner.EXPECT().AddExpense(gomock.Any(), int64(1), gomock.Any()).Return(models.Expense{ID: 1}, nil)

	_, err := svc.AddExpense(context.Background(), 1, req)

	assert.NoError(t, err)
}

func TestExpenseValidationService_InvalidOwner(t *testing.T) {
	svc, _ := newTestValidationSvc(t)
	ctx := context.Background()

	_, err := svc.AddExpense(ctx, 0, lunchRequest())
	assert.ErrorIs(t, err, ErrInvalidOwner)

	_, err = svc.ListExpenses(ctx, -1)
	assert.ErrorIs(t, err, ErrInvalidOwner)

	_, err = svc.GetExpense(ctx, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidOwner)

	err = svc.DeleteExpense(ctx, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidOwner)

	_, err = svc.DeleteAllExpenses(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidOwner)
}

func TestExpenseValidationService_NonPositiveExpenseIDIsNotFound(t *testing.T) {
	svc, _ := newTestValidationSvc(t)
	ctx := context.Background()

	for _, id := range []int64{0, -7} {
		err := svc.DeleteExpense(ctx, 1, id)
		assert.ErrorIs(t, err, ErrExpenseNotFound)

		_, err = svc.GetExpense(ctx, 1, id)
		assert.ErrorIs(t, err, ErrExpenseNotFound)
	}
}

func TestExpenseValidationService_Delegates(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()

	inner.EXPECT().ListExpenses(ctx, int64(1)).Return([]models.Expense{}, nil)
	inner.EXPECT().GetExpense(ctx, int64(1), int64(2)).Return(models.Expense{ID: 2}, nil)
	inner.EXPECT().DeleteExpense(ctx, int64(1), int64(2)).Return(nil)
	inner.EXPECT().DeleteAllExpenses(ctx, int64(1)).Return(int64(3), nil)

	_, err := svc.ListExpenses(ctx, 1)
	require.NoError(t, err)
	_, err = svc.GetExpense(ctx, 1, 2)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteExpense(ctx, 1, 2))
	deleted, err := svc.DeleteAllExpenses(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}
