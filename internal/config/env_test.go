// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY":     "jwt_secret",
		"APP_TOKEN_ISSUER":       "test_issuer",
		"APP_PASSWORD_HASH_COST": "12",
		"APP_VERSION":            "1.2.3",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_GRPC_ADDRESS":     "localhost:9090",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"SERVER_SHUTDOWN_TIMEOUT": "5s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DRIVER":            "sqlite3",
		"STORAGE_DB_DATABASE_URI":      "file:test.db",
		"STORAGE_DB_MAX_OPEN_CONNS":    "10",
		"STORAGE_DB_MAX_IDLE_CONNS":    "2",
		"STORAGE_DB_CONN_MAX_LIFETIME": "1m",
		"STORAGE_DB_QUERY_TIMEOUT":     "3s",

		"ADAPTER_ADDRESS":         "http://localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "7s",
		"ADAPTER_TOKEN_FILE":      "/tmp/token",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, 2, cfg.Storage.DB.MaxIdleConns)
	assert.Equal(t, time.Minute, cfg.Storage.DB.ConnMaxLifetime)
	assert.Equal(t, 3*time.Second, cfg.Storage.DB.QueryTimeout)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/token", cfg.Adapter.TokenFile)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "only-key",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "only-key", cfg.App.TokenSignKey)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DB_MAX_OPEN_CONNS": "ten",
	})

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}
