// Package utils provides general-purpose helpers shared across the
// expense-tracker packages: typed context keys, password hashing, JSON
// response writing, the resty-based HTTP client, session token signing and
// validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/expense-tracker/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the auth middleware stores the
// validated [models.Session] of the caller.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext retrieves the session stored by WithSession.
//
// ok is false when no session is present or the value has an unexpected type.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}

// GetUserIDFromContext returns the owner ID of the session stored in ctx.
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing session in context
//	}
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	session, ok := GetSessionFromContext(ctx)
	if !ok {
		return 0, false
	}
	return session.UserID, true
}
