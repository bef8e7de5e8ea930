// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied before any other configuration source.
const (
	defaultHTTPAddress      = ":5000"
	defaultTokenIssuer      = "expense-tracker"
	defaultPasswordHashCost = 10
	defaultMaxOpenConns     = 10
	defaultMaxIdleConns     = 5
	defaultConnMaxLifetime  = 30 * time.Minute
	defaultQueryTimeout     = 5 * time.Second
	defaultRequestTimeout   = 30 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
	defaultAdapterAddress   = "http://localhost:5000"
	defaultAdapterTimeout   = 10 * time.Second
	defaultTokenFile        = ".expense-tracker-token"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			PasswordHashCost: defaultPasswordHashCost,
		},
		Storage: Storage{
			DB: DB{
				Driver:          DriverPostgres,
				MaxOpenConns:    defaultMaxOpenConns,
				MaxIdleConns:    defaultMaxIdleConns,
				ConnMaxLifetime: defaultConnMaxLifetime,
				QueryTimeout:    defaultQueryTimeout,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
			TokenFile:      defaultTokenFile,
		},
	}
}
