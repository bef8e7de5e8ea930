package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/models"
)

// expenseRepository is the SQL-backed implementation of [ExpenseRepository].
// Every query filters on user_id so one owner can never read or remove
// another owner's rows.
type expenseRepository struct {
	*DB
	logger *logger.Logger
}

func NewExpenseRepository(db *DB, logger *logger.Logger) ExpenseRepository {
	logger.Debug().Msg("creating expense repository")
	return &expenseRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (models.Expense, error) {
	var e models.Expense
	err := row.Scan(&e.ID, &e.UserID, &e.Category, &e.Amount, &e.Description, &e.Date, timestamp{&e.CreatedAt})
	return e, err
}

func (p *expenseRepository) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.createExpenseQuery(expense)
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.CreateExpense").Msg("failed to build query")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := p.operationContext(ctx)
	defer cancel()

	created, err := scanExpense(p.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.CreateExpense").
			Int64("user_id", expense.UserID).
			Stringer("classification", p.classify(err)).
			Msg("failed to insert expense")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindExpensesByOwner returns an empty slice when the owner has no records.
func (p *expenseRepository) FindExpensesByOwner(ctx context.Context, userID int64) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.findExpensesByOwnerQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.FindExpensesByOwner").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := p.operationContext(ctx)
	defer cancel()

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.FindExpensesByOwner").
			Int64("user_id", userID).
			Stringer("classification", p.classify(err)).
			Msg("failed to execute query for getting expenses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0, 16)
	for rows.Next() {
		expense, scanErr := scanExpense(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "expenseRepository.FindExpensesByOwner").
				Int64("user_id", userID).
				Msg("failed to scan expense row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		expenses = append(expenses, expense)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "expenseRepository.FindExpensesByOwner").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return expenses, nil
}

func (p *expenseRepository) FindExpenseByIDAndOwner(ctx context.Context, expenseID, userID int64) (models.Expense, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.findExpenseByIDAndOwnerQuery(expenseID, userID)
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.FindExpenseByIDAndOwner").Msg("failed to build query")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := p.operationContext(ctx)
	defer cancel()

	expense, err := scanExpense(p.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Expense{}, ErrExpenseNotFound
		}

		log.Err(err).
			Str("func", "expenseRepository.FindExpenseByIDAndOwner").
			Int64("user_id", userID).
			Int64("expense_id", expenseID).
			Msg("failed to find expense")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expense, nil
}

func (p *expenseRepository) DeleteExpenseByID(ctx context.Context, expenseID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := p.deleteExpenseByIDQuery(expenseID, userID)
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.DeleteExpenseByID").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := p.operationContext(ctx)
	defer cancel()

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.DeleteExpenseByID").
			Int64("user_id", userID).
			Int64("expense_id", expenseID).
			Stringer("classification", p.classify(err)).
			Msg("failed to delete expense")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

func (p *expenseRepository) DeleteExpensesByOwner(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.deleteExpensesByOwnerQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.DeleteExpensesByOwner").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := p.operationContext(ctx)
	defer cancel()

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.DeleteExpensesByOwner").
			Int64("user_id", userID).
			Stringer("classification", p.classify(err)).
			Msg("failed to delete expenses")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
