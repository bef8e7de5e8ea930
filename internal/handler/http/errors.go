// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrRequestBodyTooLarge is reported when a request body exceeds
	// maxRequestBodyBytes.
	ErrRequestBodyTooLarge = errors.New("request body too large")
)

// Client-facing messages. They never reveal which credential factor failed
// or whether an expense exists under another owner.
const (
	msgInvalidJSON            = "Invalid JSON"
	msgRequestBodyTooLarge    = "Request body too large"
	msgEmailAlreadyRegistered = "Email already registered"
	msgInvalidCredentials     = "Invalid email or password"
	msgNoToken                = "No token provided"
	msgInvalidToken           = "Invalid token"
	msgExpenseNotFound        = "Expense not found"
	msgServerError            = "Server error"

	msgUserRegistered     = "User registered successfully"
	msgExpenseDeleted     = "Expense deleted successfully"
	msgAllExpensesDeleted = "All expenses deleted successfully"
)
