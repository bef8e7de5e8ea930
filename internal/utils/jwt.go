package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/expense-tracker/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned by ParseBearerToken for any value
// that is not "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// GenerateJWTToken creates a signed HMAC-SHA256 session token.
//
// The token carries:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - email          : the user's email
//   - IssuedAt  (iat): issuedAt truncated to the second
//   - ExpiresAt (exp): iat plus [models.SessionTokenTTL]
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("expense-tracker", 42, "a@x.io", time.Now(), "secret")
func GenerateJWTToken(issuer string, userID int64, email string, issuedAt time.Time, signKey string) (models.Token, error) {
	if issuer == "" || signKey == "" || issuedAt.IsZero() {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	iat := issuedAt.Truncate(time.Second)
	exp := iat.Add(models.SessionTokenTTL)
	claims := &models.TokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, IssuedAt: iat, ExpiresAt: exp}, nil
}

// ValidateAndParseJWTToken validates tokenString and returns its claims.
//
// Validation includes:
//   - HS256 signature verification with tokenSignKey (other algorithms,
//     including "none", are rejected)
//   - issuer (iss) equal to tokenIssuer
//   - a present expiration (exp) strictly after now()
//   - a subject (sub) that parses as an int64 user ID
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now func() time.Time) (*models.TokenClaims, error) {
	if now == nil {
		now = time.Now
	}

	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if _, err = claims.GetUserID(); err != nil {
		return nil, err
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
