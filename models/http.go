// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=255"`
	Email    string `json:"email" validate:"required,notblank,max=255"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

// AddExpenseRequest is the body of POST /api/expenses.
//
// Amount accepts both JSON numbers (12.5) and strings ("12.50"); a missing
// or null amount leaves Amount.Valid false.
type AddExpenseRequest struct {
	Category    string              `json:"category" validate:"required,notblank,max=50"`
	Amount      decimal.NullDecimal `json:"amount" validate:"required,money"`
	Description string              `json:"description" validate:"required,notblank,max=255"`
	Date        Date                `json:"date" validate:"required"`
}
