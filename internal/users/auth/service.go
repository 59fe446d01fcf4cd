// Copyright (c) 2026 Jhair Studio. All rights reserved.

/*
Package auth implements identity and access management for the admin panel.

It covers admin login with bcrypt password verification and RSA-signed JWT
issuance, plus token verification for the protected content endpoints.

Architecture:

  - Service: Orchestrates business logic (Login, Verify, Bootstrap).
  - Repository: Abstracted interface for Postgres (admin accounts).
  - Security: Bcrypt hashes and RS256 JWTs via the sec package.

Sessions are deliberately stateless: a bearer token is the only credential,
and logout is a client-side discard.
*/
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/jhairstudio/jhair-server/internal/platform/apperr"
	"github.com/jhairstudio/jhair-server/internal/platform/sec"
	"github.com/jhairstudio/jhair-server/pkg/uuid"
)

// AccessTokenTTL is how long an admin session token stays valid.
const AccessTokenTTL = 24 * time.Hour

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements admin authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing or login
// logic must be reviewed before release.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
	logger         *slog.Logger
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
		logger:         logger,
	}
}

// # Login Flow

// LoginResult is what a successful login returns to the admin UI.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

/*
Login verifies credentials and issues a signed access token.

Description: Constant-shape failure handling; a wrong username and a wrong
password are indistinguishable to the caller.

Parameters:
  - context: context.Context
  - username: Submitted username
  - password: Submitted plain-text password

Returns:
  - *LoginResult: Signed token plus the canonical username
  - error: Unauthorized on any credential mismatch
*/
func (service *Service) Login(context context.Context, username, password string) (*LoginResult, error) {
	user, err := service.userRepository.FindByUsername(context, username)
	if err != nil {
		// Do not reveal whether the username exists
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		service.logger.WarnContext(context, "login_failed", slog.String("username", username))
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	token, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, user.Role, AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.InfoContext(context, "login_succeeded", slog.String("user_id", user.ID))

	return &LoginResult{
		Token:    token,
		Username: user.Username,
	}, nil
}

// # Account Bootstrap

/*
EnsureAccount creates an admin account if the username is free.

Description: Used by deployment tooling to seed the first administrator.
Existing accounts are left untouched.

Parameters:
  - context: context.Context
  - username: Account username
  - password: Plain-text password to hash
  - role: Account role ("admin" or "editor")

Returns:
  - error: Hashing or storage errors; nil when the account already exists
*/
func (service *Service) EnsureAccount(context context.Context, username, password string, role sec.UserRole) error {
	if _, err := service.userRepository.FindByUsername(context, username); err == nil {
		return nil
	}

	hashedPassword, err := sec.HashPassword(password)
	if err != nil {
		return apperr.Internal(err)
	}

	user := &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         string(role),
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return err
	}

	service.logger.InfoContext(context, "admin_account_created", slog.String("username", username))
	return nil
}
