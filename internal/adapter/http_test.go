// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/expense-tracker/internal/config"
	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJ1c2VyX2lkIjoxfQ.signature"

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func newLoggedInAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a := newTestAdapter(t, serverURL)
	a.SetToken(testToken)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func assertBearer(t *testing.T, r *http.Request) {
	t.Helper()
	assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
}

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:5000/", want: "http://localhost:5000"},
		{name: "missing scheme", raw: "localhost:5000", want: "http://localhost:5000"},
		{name: "surrounding spaces", raw: "  https://api.example.com  ", want: "https://api.example.com"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

func TestSetToken_Trims(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:5000")
	assert.Empty(t, a.Token())

	a.SetToken("  abc \n")
	assert.Equal(t, "abc", a.Token())
}

// ── SignUp ──────────────────────────────────────────────────────────────────

func TestSignUp_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/signup", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body models.SignUpRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice@x.io", body.Email)

		writeJSON(t, w, http.StatusCreated, models.SignUpResponse{
			Message: "User registered successfully",
			User:    models.UserResponse{ID: 1, Name: body.Name, Email: body.Email},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SignUp(context.Background(), models.SignUpRequest{Name: "Alice", Email: "alice@x.io", Password: "pw1"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.User.ID)
	assert.Equal(t, "User registered successfully", got.Message)
	assert.Empty(t, a.Token())
}

func TestSignUp_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.MessageResponse{Message: "Email already registered"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignUp(context.Background(), models.SignUpRequest{Name: "Alice", Email: "alice@x.io", Password: "pw1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Email already registered")
}

func TestSignUp_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignUp(context.Background(), models.SignUpRequest{Email: "alice@x.io"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		writeJSON(t, w, http.StatusOK, models.LoginResponse{
			Token: testToken,
			User:  models.UserResponse{ID: 1, Name: "Alice", Email: "alice@x.io"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Email: "alice@x.io", Password: "pw1"})

	require.NoError(t, err)
	assert.Equal(t, "alice@x.io", got.User.Email)
	assert.Equal(t, testToken, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "Invalid email or password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "alice@x.io", Password: "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid email or password")
	assert.Empty(t, a.Token())
}

func TestLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResponse{User: models.UserResponse{ID: 1}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "alice@x.io", Password: "pw1"})

	require.Error(t, err)
	assert.Empty(t, a.Token())
}

func TestLogin_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "alice@x.io", Password: "pw1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadGateway)
}

// ── Expenses ────────────────────────────────────────────────────────────────

func TestExpenses_RequireToken(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:5000")
	ctx := context.Background()

	_, err := a.ListExpenses(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = a.AddExpense(ctx, models.AddExpenseRequest{})
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = a.GetExpense(ctx, 1)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	assert.ErrorIs(t, a.DeleteExpense(ctx, 1), ErrNotLoggedIn)

	_, err = a.DeleteAllExpenses(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestListExpenses_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/expenses", r.URL.Path)
		assertBearer(t, r)

		writeJSON(t, w, http.StatusOK, []models.ExpenseResponse{
			{ID: 2, UserID: 1, Category: "Travel", Amount: "40.00", Date: models.NewDate(2024, time.March, 2)},
			{ID: 1, UserID: 1, Category: "Food", Amount: "12.50", Date: models.NewDate(2024, time.March, 1)},
		})
	}))
	defer srv.Close()

	a := newLoggedInAdapter(t, srv.URL)
	got, err := a.ListExpenses(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, "12.50", got[1].Amount)
	assert.Equal(t, "2024-03-01", got[1].Date.String())
}

func TestListExpenses_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.ExpenseResponse{})
	}))
	defer srv.Close()

	a := newLoggedInAdapter(t, srv.URL)
	got, err := a.ListExpenses(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListExpenses_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "Invalid token"})
	}))
	defer srv.Close()

	a := newLoggedInAdapter(t, srv.URL)
	_, err := a.ListExpenses(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAddExpense_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/expenses", r.URL.Path)
		assertBearer(t, r)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Food", body["category"])
		assert.Equal(t, "12.5", body["amount"])
		assert.Equal(t, "2024-03-01", body["date"])

		writeJSON(t, w, http.StatusCreated, models.ExpenseResponse{
			ID: 7, UserID: 1, Category: "Food", Amount: "12.50", Description: "Lunch",
			Date: models.NewDate(2024, time.March, 1),
		})
	}))
	defer srv.Close()

	a := newLoggedInAdapter(t, srv.URL)
	got, err := a.AddExpense(context.Background(), models.AddExpenseRequest{
		Category:    "Food",
		Amount:      decimal.NewNullDecimal(decimal.RequireFromString("12.50")),
		Description: "Lunch",
		Date:        models.NewDate(2024, time.March, 1),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "12.50", got.Amount)
}

func TestAddExpense_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.MessageResponse{Message: "All fields are required"})
	}))
	defer srv.Close()

	a := newLoggedInAdapter(t, srv.URL)
	_, err := a.AddExpense(context.Background(), models.AddExpenseRequest{Category: "Food"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "All fields are required")
}

func TestGetExpense_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/expenses/7", r.URL.Path)
		assertBearer(t, r)

		writeJSON(t, w, http.StatusOK, models.ExpenseResponse{ID: 7, UserID: 1, Amount: "3.00"})
	}))
	defer srv.Close()

	a := newLoggedInAdapter(t, srv.URL)
	got, err := a.GetExpense(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
}

func TestGetExpense_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.MessageResponse{Message: "Expense not found"})
	}))
	defer srv.Close()

	a := newLoggedInAdapter(t, srv.URL)
	_, err := a.GetExpense(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, err.Error(), "Expense not found")
}

func TestDeleteExpense_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/expenses/3", r.URL.Path)
		assertBearer(t, r)

		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Expense deleted successfully"})
	}))
	defer srv.Close()

	a := newLoggedInAdapter(t, srv.URL)
	require.NoError(t, a.DeleteExpense(context.Background(), 3))
}

func TestDeleteExpense_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.MessageResponse{Message: "Expense not found"})
	}))
	defer srv.Close()

	a := newLoggedInAdapter(t, srv.URL)
	err := a.DeleteExpense(context.Background(), 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteAllExpenses_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/expenses/delete-all", r.URL.Path)
		assertBearer(t, r)

		writeJSON(t, w, http.StatusOK, models.DeleteAllResponse{Message: "All expenses deleted successfully", Deleted: 4})
	}))
	defer srv.Close()

	a := newLoggedInAdapter(t, srv.URL)
	deleted, err := a.DeleteAllExpenses(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}

// ── Health ──────────────────────────────────────────────────────────────────

func TestHealth_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, models.HealthResponse{Status: "ok", Version: "1.0.0"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, "1.0.0", got.Version)
}

func TestHealth_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.Health(context.Background())

	assert.Error(t, err)
}

// ── Error mapping ───────────────────────────────────────────────────────────

func TestResponseMessage(t *testing.T) {
	assert.Equal(t, "Invalid token", responseMessage([]byte(`{"message":"Invalid token"}`)))
	assert.Equal(t, "plain text", responseMessage([]byte(" plain text\n")))
	assert.Equal(t, `{"other":1}`, responseMessage([]byte(`{"other":1}`)))
	assert.Empty(t, responseMessage(nil))
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Health(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusTeapot))
}
