// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport used by the
// expense-tracker command-line client to talk to the server.
//
// The primary abstraction is [ServerAdapter]. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401). The server's {"message": ...} body is kept
// in the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/expense-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the expense-tracker server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// SignUp registers a new account. No token is issued by signup.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.SignUpResponse, error)

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// ListExpenses returns the caller's expenses, newest first.
	ListExpenses(ctx context.Context) ([]models.ExpenseResponse, error)

	// AddExpense records a new expense and returns it as stored.
	AddExpense(ctx context.Context, req models.AddExpenseRequest) (models.ExpenseResponse, error)

	// GetExpense fetches one of the caller's expenses.
	GetExpense(ctx context.Context, expenseID int64) (models.ExpenseResponse, error)

	// DeleteExpense removes one of the caller's expenses.
	DeleteExpense(ctx context.Context, expenseID int64) error

	// DeleteAllExpenses removes every expense of the caller and returns how
	// many were deleted.
	DeleteAllExpenses(ctx context.Context) (int64, error)

	// Health reports server liveness and version. No token is required.
	Health(ctx context.Context) (models.HealthResponse, error)
}
