// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-qr-notes/internal/config"
	"github.com/MKhiriev/go-qr-notes/internal/logger"
	"github.com/MKhiriev/go-qr-notes/internal/store"
	"github.com/MKhiriev/go-qr-notes/internal/utils"
	"github.com/MKhiriev/go-qr-notes/internal/validators"
	"github.com/MKhiriev/go-qr-notes/models"
)

// authService is the concrete implementation of AuthService.
//
// Passwords are stored and compared as plain text. The upstream data model
// keeps the credential in the profile record as well; both writes happen at
// registration and only the credential copy is read back at login.
type authService struct {
	userRepository store.UserRepository

	// ids assigns user identifiers at registration.
	ids *utils.UUIDGenerator

	// validate enforces the registration input rules.
	validate validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		ids:            utils.NewUUIDGenerator(),
		validate:       validators.NewUserValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates name, email and password, assigns the user id, and delegates
// persistence to the UserRepository. The caller is expected to log in
// afterwards; registration issues no token.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if a required field is empty or malformed.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken, see store.ErrEmailAlreadyRegistered).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validate.Validate(ctx, user); err != nil {
		log.Err(err).Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user.ID = a.ids.Generate()
	user.CreatedAt = time.Now().UTC()

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks the account up by email and compares the stored password with the
// supplied one. The comparison is an exact plain-text match.
//
// Returns the stored user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the lookup fails (e.g. user not found, see
//     store.ErrNoUserWasFound).
//   - ErrWrongPassword if the passwords do not match.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if foundUser.Password != password {
		log.Warn().Str("id", foundUser.ID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// Profile fetches the account record for an authenticated user id. The
// response carries the plaintext security password so the client can apply
// the account-wide gate locally.
func (a *authService) Profile(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		log.Error().Msg("empty user id provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("user lookup by id failed")
		return models.User{}, fmt.Errorf("user lookup by id failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
