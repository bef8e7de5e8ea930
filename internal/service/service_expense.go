package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/metrics"
	"github.com/MKhiriev/expense-tracker/internal/store"
	"github.com/MKhiriev/expense-tracker/models"
)

type expenseService struct {
	expenseRepository store.ExpenseRepository

	logger *logger.Logger
}

// NewExpenseService returns the ledger service backed by expenseRepository.
// It does not validate input; wrap it with NewExpenseValidationService.
func NewExpenseService(expenseRepository store.ExpenseRepository, logger *logger.Logger) ExpenseService {
	return &expenseService{
		expenseRepository: expenseRepository,
		logger:            logger,
	}
}

func (e *expenseService) AddExpense(ctx context.Context, ownerID int64, request models.AddExpenseRequest) (models.Expense, error) {
	expense := models.Expense{
		UserID:      ownerID,
		Category:    strings.TrimSpace(request.Category),
		Amount:      request.Amount.Decimal,
		Description: strings.TrimSpace(request.Description),
		Date:        request.Date,
	}

	created, err := e.expenseRepository.CreateExpense(ctx, expense)
	if err != nil {
		return models.Expense{}, fmt.Errorf("expense creation ended with error: %w", err)
	}

	metrics.ExpensesCreatedTotal.Inc()
	logger.FromContext(ctx).Debug().
		Int64("user_id", ownerID).
		Int64("expense_id", created.ID).
		Msg("expense created")

	return created, nil
}

func (e *expenseService) ListExpenses(ctx context.Context, ownerID int64) ([]models.Expense, error) {
	expenses, err := e.expenseRepository.FindExpensesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing expenses ended with error: %w", err)
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}

	return expenses, nil
}

func (e *expenseService) GetExpense(ctx context.Context, ownerID, expenseID int64) (models.Expense, error) {
	expense, err := e.expenseRepository.FindExpenseByIDAndOwner(ctx, expenseID, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrExpenseNotFound) {
			return models.Expense{}, ErrExpenseNotFound
		}
		return models.Expense{}, fmt.Errorf("expense search ended with error: %w", err)
	}

	return expense, nil
}

// DeleteExpense removes a single expense owned by ownerID. A record that
// does not exist and a record of another owner are both ErrExpenseNotFound.
func (e *expenseService) DeleteExpense(ctx context.Context, ownerID, expenseID int64) error {
	err := e.expenseRepository.DeleteExpenseByID(ctx, expenseID, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrExpenseNotFound) {
			logger.FromContext(ctx).Debug().
				Int64("user_id", ownerID).
				Int64("expense_id", expenseID).
				Msg("expense to delete not found for owner")
			return ErrExpenseNotFound
		}
		return fmt.Errorf("expense deletion ended with error: %w", err)
	}

	metrics.ExpensesDeletedTotal.WithLabelValues("single").Inc()
	return nil
}

// DeleteAllExpenses removes every expense of ownerID and reports how many
// were removed. Zero is a success.
func (e *expenseService) DeleteAllExpenses(ctx context.Context, ownerID int64) (int64, error) {
	deleted, err := e.expenseRepository.DeleteExpensesByOwner(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("expenses deletion ended with error: %w", err)
	}

	metrics.ExpensesDeletedTotal.WithLabelValues("all").Add(float64(deleted))
	logger.FromContext(ctx).Info().
		Int64("user_id", ownerID).
		Int64("deleted", deleted).
		Msg("all expenses deleted")

	return deleted, nil
}
