package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/expense-tracker/models"
)

var (
	userColumns    = []string{"id", "name", "email", "password_hash", "created_at"}
	expenseColumns = []string{"id", "user_id", "category", "amount", "description", "date", "created_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func (db *DB) createUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(user.TableName()).
		Columns("name", "email", "password_hash").
		Values(user.Name, user.Email, user.PasswordHash).
		Suffix(returning(userColumns)).
		ToSql()
}

func (db *DB) findUserByEmailQuery(email string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func (db *DB) createExpenseQuery(expense models.Expense) (string, []any, error) {
	return db.builder.
		Insert(expense.TableName()).
		Columns("user_id", "category", "amount", "description", "date").
		Values(expense.UserID, expense.Category, expense.Amount, expense.Description, expense.Date).
		Suffix(returning(expenseColumns)).
		ToSql()
}

func (db *DB) findExpensesByOwnerQuery(userID int64) (string, []any, error) {
	return db.builder.
		Select(expenseColumns...).
		From(models.Expense{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC", "id DESC").
		ToSql()
}

func (db *DB) findExpenseByIDAndOwnerQuery(expenseID, userID int64) (string, []any, error) {
	return db.builder.
		Select(expenseColumns...).
		From(models.Expense{}.TableName()).
		Where(sq.Eq{"id": expenseID, "user_id": userID}).
		ToSql()
}

func (db *DB) deleteExpenseByIDQuery(expenseID, userID int64) (string, []any, error) {
	return db.builder.
		Delete(models.Expense{}.TableName()).
		Where(sq.Eq{"id": expenseID, "user_id": userID}).
		ToSql()
}

func (db *DB) deleteExpensesByOwnerQuery(userID int64) (string, []any, error) {
	return db.builder.
		Delete(models.Expense{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
