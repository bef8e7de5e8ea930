// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTokenTTL is the fixed validity window of an issued session token.
const SessionTokenTTL = 7 * 24 * time.Hour

// TokenClaims is the JWT claim set of a session token.
//
// The owner's ID is carried in the standard "sub" claim, the email in a
// private "email" claim.
type TokenClaims struct {
	Email string `json:"email"`

	jwt.RegisteredClaims
}

// GetUserID parses the "sub" claim as the owner's int64 ID.
func (c *TokenClaims) GetUserID() (int64, error) {
	userIDString, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userIDString == "" {
		return 0, fmt.Errorf("empty subject in token")
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Token is a freshly minted session token.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string

	// IssuedAt and ExpiresAt mirror the "iat" and "exp" claims.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
