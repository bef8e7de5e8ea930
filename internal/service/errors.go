package service

import "errors"

var (
	// ErrInvalidDataProvided wraps [validators.ValidationErrors] for any
	// request that fails input validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrExpenseNotFound is returned when the expense does not exist or is
	// owned by somebody else.
	ErrExpenseNotFound = errors.New("expense not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
