// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command named by args[0] and returns when it is done.
	Run(ctx context.Context, args []string) error
}

// TokenStore persists the session token between client runs.
type TokenStore interface {
	// Load returns the stored token or "" when there is none.
	Load() (string, error)
	// Save replaces the stored token.
	Save(token string) error
	// Clear removes the stored token. Clearing a missing token is not an error.
	Clear() error
}

// PasswordReader prompts for a secret without echoing it.
type PasswordReader interface {
	ReadPassword(prompt string) (string, error)
}
