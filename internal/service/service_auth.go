// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/aion/internal/config"
	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/internal/store"
	"github.com/MKhiriev/aion/internal/utils"
	"github.com/MKhiriev/aion/internal/validators"
	"github.com/MKhiriev/aion/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT issuance
// using a UserRepository for persistence.
//
// Passwords are stored and compared as submitted. The application is a
// single-user local tool; there is no password hashing by design of the
// data contract.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	// tokenSignKey is the HMAC secret used to sign issued JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Username and email uniqueness are checked with a scan before insertion.
// The check and the insert are not atomic with respect to concurrent
// registrations; the single-user deployment model makes the race practically
// irrelevant.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - a validators.FieldErrors if the payload is malformed.
//   - ErrUsernameTaken / ErrEmailTaken on a uniqueness conflict.
func (a *authService) Register(ctx context.Context, user models.InsertUser) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, err
	}

	if _, err := a.userRepository.FindByUsername(ctx, user.Username); err == nil {
		log.Error().Str("username", user.Username).Msg("username is already taken")
		return models.User{}, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if _, err := a.userRepository.FindByEmail(ctx, user.Email); err == nil {
		log.Error().Str("email", user.Email).Msg("email is already taken")
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	registeredUser, err := a.userRepository.Create(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - a validators.FieldErrors if username or password is missing.
//   - a wrapped store.ErrUserNotFound if no such username exists.
//   - ErrWrongPassword if the passwords do not match.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Error().Err(err).Str("username", credentials.Username).Msg("invalid credentials provided")
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindByUsername(ctx, credentials.Username)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if foundUser.Password != credentials.Password {
		log.Error().
			Int64("id", foundUser.ID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CurrentUser returns the earliest registered user still present.
func (a *authService) CurrentUser(ctx context.Context) (models.User, error) {
	user, err := a.userRepository.First(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("current user lookup failed: %w", err)
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
