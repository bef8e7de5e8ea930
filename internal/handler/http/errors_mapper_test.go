package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/expense-tracker/internal/service"
	"github.com/MKhiriev/expense-tracker/internal/store"
	"github.com/MKhiriev/expense-tracker/internal/utils"
	"github.com/MKhiriev/expense-tracker/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"validation", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ValidationErrors{"name is required"}), http.StatusBadRequest, "name is required"},
		{"validation without details", service.ErrInvalidDataProvided, http.StatusBadRequest, "All fields are required"},
		{"bad json", fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON), http.StatusBadRequest, "Invalid JSON"},
		{"conflict", service.ErrEmailAlreadyRegistered, http.StatusBadRequest, "Email already registered"},
		{"credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{"no token", ErrEmptyAuthorizationHeader, http.StatusUnauthorized, "No token provided"},
		{"bad header", utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, "Invalid token"},
		{"expired", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "Invalid token"},
		{"forbidden", service.ErrExpenseNotFound, http.StatusForbidden, "Expense not found"},
		{"store failure", fmt.Errorf("wrapped: %w", store.ErrExecutingQuery), http.StatusInternalServerError, "Server error"},
		{"unknown", errors.New("pq: connection reset"), http.StatusInternalServerError, "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := responseFromError(tt.err)

			assert.Equal(t, tt.wantStatus, got.status)
			assert.Equal(t, tt.wantMessage, got.message)
		})
	}
}
