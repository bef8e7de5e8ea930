// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the expense-tracker command-line client.
//
// [App] parses a subcommand (signup, login, logout, list, add, get, delete,
// delete-all, health), talks to the server through an
// [adapter.ServerAdapter] and prints the result. The session token issued by
// login is kept by a [TokenStore] between invocations.
package client
