package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/expense-tracker/internal/config"
	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/utils"
	"github.com/MKhiriev/expense-tracker/models"
	"github.com/go-resty/resty/v2"
)

const (
	signUpPath      = "/api/auth/signup"
	loginPath       = "/api/auth/login"
	expensesPath    = "/api/expenses"
	expensePath     = "/api/expenses/{id}"
	deleteAllPath   = "/api/expenses/delete-all"
	healthCheckPath = "/api/health"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// SignUp implements [ServerAdapter].
func (h *httpServerAdapter) SignUp(ctx context.Context, req models.SignUpRequest) (models.SignUpResponse, error) {
	var out models.SignUpResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post(signUpPath)
	if err != nil {
		return models.SignUpResponse{}, fmt.Errorf("signup request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SignUpResponse{}, err
	}

	h.logger.Debug().Int64("user_id", out.User.ID).Msg("account registered")
	return out, nil
}

// Login implements [ServerAdapter]. The returned token is stored for
// subsequent authenticated requests.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post(loginPath)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}
	if strings.TrimSpace(out.Token) == "" {
		return models.LoginResponse{}, fmt.Errorf("login response has no token")
	}

	h.SetToken(out.Token)
	return out, nil
}

// ListExpenses implements [ServerAdapter].
func (h *httpServerAdapter) ListExpenses(ctx context.Context) ([]models.ExpenseResponse, error) {
	req, err := h.authorizedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var out []models.ExpenseResponse
	resp, err := req.SetResult(&out).Get(expensesPath)
	if err != nil {
		return nil, fmt.Errorf("list expenses request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if out == nil {
		out = []models.ExpenseResponse{}
	}
	return out, nil
}

// AddExpense implements [ServerAdapter].
func (h *httpServerAdapter) AddExpense(ctx context.Context, expense models.AddExpenseRequest) (models.ExpenseResponse, error) {
	req, err := h.authorizedRequest(ctx)
	if err != nil {
		return models.ExpenseResponse{}, err
	}

	var out models.ExpenseResponse
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(expense).
		SetResult(&out).
		Post(expensesPath)
	if err != nil {
		return models.ExpenseResponse{}, fmt.Errorf("add expense request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExpenseResponse{}, err
	}

	return out, nil
}

// GetExpense implements [ServerAdapter].
func (h *httpServerAdapter) GetExpense(ctx context.Context, expenseID int64) (models.ExpenseResponse, error) {
	req, err := h.authorizedRequest(ctx)
	if err != nil {
		return models.ExpenseResponse{}, err
	}

	var out models.ExpenseResponse
	resp, err := req.
		SetPathParam("id", strconv.FormatInt(expenseID, 10)).
		SetResult(&out).
		Get(expensePath)
	if err != nil {
		return models.ExpenseResponse{}, fmt.Errorf("get expense request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExpenseResponse{}, err
	}

	return out, nil
}

// DeleteExpense implements [ServerAdapter].
func (h *httpServerAdapter) DeleteExpense(ctx context.Context, expenseID int64) error {
	req, err := h.authorizedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", strconv.FormatInt(expenseID, 10)).
		Delete(expensePath)
	if err != nil {
		return fmt.Errorf("delete expense request failed: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteAllExpenses implements [ServerAdapter].
func (h *httpServerAdapter) DeleteAllExpenses(ctx context.Context) (int64, error) {
	req, err := h.authorizedRequest(ctx)
	if err != nil {
		return 0, err
	}

	var out models.DeleteAllResponse
	resp, err := req.SetResult(&out).Delete(deleteAllPath)
	if err != nil {
		return 0, fmt.Errorf("delete all expenses request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return out.Deleted, nil
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var out models.HealthResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get(healthCheckPath)
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) authorizedRequest(ctx context.Context) (*resty.Request, error) {
	if h.token == "" {
		return nil, ErrNotLoggedIn
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token), nil
}
