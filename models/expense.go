// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single dated monetary record in a user's ledger.
//
// Records are never updated in place: they are created by the owner and
// deleted either individually or all at once.
type Expense struct {
	// ID is the server-assigned unique identifier of the record.
	ID int64

	// UserID references the owning [User]. It is always taken from the
	// authenticated session and never from client input.
	UserID int64

	// Category is a short label such as "food" or "transport".
	Category string

	// Amount is a non-negative fixed-point value with two decimal places.
	Amount decimal.Decimal

	// Description is a free-form note.
	Description string

	// Date is the calendar day the expense happened.
	Date Date

	// CreatedAt is the moment the record was stored.
	CreatedAt time.Time
}

// TableName returns the name of the database table
// associated with the Expense model.
func (e Expense) TableName() string {
	return "expenses"
}
