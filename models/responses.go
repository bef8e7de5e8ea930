// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MessageResponse is the generic body for status messages and errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is the client-facing projection of a [User].
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SignUpResponse is returned by a successful signup.
type SignUpResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ExpenseResponse is the JSON representation of an [Expense].
// Amount is always rendered with exactly two decimals, e.g. "12.50".
type ExpenseResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Date        Date      `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewExpenseResponse converts an [Expense] into its JSON representation.
func NewExpenseResponse(e Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		Category:    e.Category,
		Amount:      e.Amount.StringFixed(2),
		Description: e.Description,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}

// NewExpenseResponses converts a slice of expenses, never returning nil so
// that an empty ledger encodes as [].
func NewExpenseResponses(expenses []Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, NewExpenseResponse(e))
	}
	return out
}

// DeleteAllResponse is returned by DELETE /api/expenses/delete-all.
type DeleteAllResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
