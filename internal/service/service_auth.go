package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/expense-tracker/internal/config"
	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/metrics"
	"github.com/MKhiriev/expense-tracker/internal/store"
	"github.com/MKhiriev/expense-tracker/internal/utils"
	"github.com/MKhiriev/expense-tracker/internal/validators"
	"github.com/MKhiriev/expense-tracker/models"
)

// dummyPassword is hashed once and compared against on logins for unknown
// emails, so both failure paths cost one bcrypt comparison.
const dummyPassword = "expense-tracker-dummy-password"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification with bcrypt and the
// session token lifecycle using a UserRepository for persistence.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// passwordHashCost is the bcrypt cost used for new password hashes.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	now func() time.Time

	dummyHashOnce sync.Once
	dummyHash     string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		validator:        validator,
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		now:              time.Now,
		logger:           logger,
	}
}

// normalizeEmail makes email lookups case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterUser creates a new user account.
//
// The email is normalised, the request is validated and the password is
// hashed with bcrypt before the user is inserted. A concurrent or earlier
// signup with the same email is detected by the store's unique constraint.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if a field is missing or too long.
//   - ErrEmailAlreadyRegistered if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, request models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	request.Name = strings.TrimSpace(request.Name)
	request.Email = normalizeEmail(request.Email)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Msg("invalid signup data provided")
		metrics.AuthAttemptsTotal.WithLabelValues("signup", metrics.OutcomeInvalid).Inc()
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := utils.HashPassword(request.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		metrics.AuthAttemptsTotal.WithLabelValues("signup", metrics.OutcomeError).Inc()
		return models.User{}, err
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Debug().Msg("email already registered")
			metrics.AuthAttemptsTotal.WithLabelValues("signup", metrics.OutcomeConflict).Inc()
			return models.User{}, ErrEmailAlreadyRegistered
		}

		log.Err(err).Msg("user creation ended with error")
		metrics.AuthAttemptsTotal.WithLabelValues("signup", metrics.OutcomeError).Inc()
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("signup", metrics.OutcomeSuccess).Inc()
	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials if the email is unknown or the password does not
//     match. Both cases take one bcrypt comparison.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	request.Email = normalizeEmail(request.Email)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Msg("invalid login data provided")
		metrics.AuthAttemptsTotal.WithLabelValues("login", metrics.OutcomeInvalid).Inc()
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			utils.CheckPasswordHash(a.getDummyHash(), request.Password)
			log.Debug().Msg("login for unknown email")
			metrics.AuthAttemptsTotal.WithLabelValues("login", metrics.OutcomeRejected).Inc()
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Msg("user search by email failed")
		metrics.AuthAttemptsTotal.WithLabelValues("login", metrics.OutcomeError).Inc()
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPasswordHash(foundUser.PasswordHash, request.Password) {
		log.Debug().Int64("user_id", foundUser.UserID).Msg("wrong password")
		metrics.AuthAttemptsTotal.WithLabelValues("login", metrics.OutcomeRejected).Inc()
		return models.User{}, ErrInvalidCredentials
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", metrics.OutcomeSuccess).Inc()
	return foundUser, nil
}

func (a *authService) getDummyHash() string {
	a.dummyHashOnce.Do(func() {
		hash, err := utils.HashPassword(dummyPassword, a.passwordHashCost)
		if err != nil {
			a.logger.Err(err).Msg("dummy password hashing failed")
			return
		}
		a.dummyHash = hash
	})
	return a.dummyHash
}

// CreateToken issues a signed session token for the given user, valid for
// [models.SessionTokenTTL] from now.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Email, a.now(), a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authorize validates a raw session token and returns its session.
//
// Any failure (empty, malformed, foreign signature or algorithm, wrong
// issuer, expired) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) Authorize(ctx context.Context, tokenString string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		metrics.AuthAttemptsTotal.WithLabelValues("authorize", metrics.OutcomeRejected).Inc()
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		metrics.AuthAttemptsTotal.WithLabelValues("authorize", metrics.OutcomeRejected).Inc()
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	userID, err := claims.GetUserID()
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("authorize", metrics.OutcomeRejected).Inc()
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	session := models.Session{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}

	metrics.AuthAttemptsTotal.WithLabelValues("authorize", metrics.OutcomeSuccess).Inc()
	return session, nil
}
