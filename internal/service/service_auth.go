package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-flight-board/internal/logger"
	"github.com/MKhiriev/go-flight-board/internal/store"
	"github.com/MKhiriev/go-flight-board/internal/validators"
	"github.com/MKhiriev/go-flight-board/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and token
// resolution using a UserRepository for persistence, a PasswordHasher for
// bcrypt hashing and a TokenService for JWT signing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	passwordHasher PasswordHasher
	tokenService   TokenService

	// validator checks credentials and claims before any other step runs.
	validator validators.Validator

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, passwordHasher PasswordHasher, tokenService TokenService, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		tokenService:   tokenService,
		validator:      validators.NewAuthValidator(),
		logger:         logger,
	}
}

// RegisterUser creates a new user account and issues its first token.
//
// Steps run strictly in order: validate, look up, hash, create, issue.
//
// Returns:
//   - ErrInvalidDataProvided if the username or password is empty;
//   - store.ErrLoginAlreadyExists if the username is taken, including when a
//     concurrent registration wins the race between lookup and insert;
//   - a wrapped error if hashing, storage or token issuance fails. A token
//     failure is reported even though the user has already been stored.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Msg("invalid registration data provided")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	switch {
	case err == nil:
		log.Debug().Str("username", credentials.Username).Msg("username already taken")
		return models.AuthResult{}, store.ErrLoginAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Msg("user search by username failed")
		return models.AuthResult{}, fmt.Errorf("user search by username failed: %w", err)
	}

	passwordHash, err := a.passwordHasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResult{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.tokenService.Issue(ctx, user)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("token issuance failed after user creation")
		return models.AuthResult{}, err
	}

	log.Info().Str("user_id", user.UserID).Msg("user registered")
	return models.AuthResult{User: user, Token: token}, nil
}

// Login authenticates an existing user and issues a fresh token.
//
// An unknown username and a wrong password both return ErrInvalidCredentials
// so that callers cannot tell which one occurred.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Msg("invalid login data provided")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("username", credentials.Username).Msg("login for unknown username")
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by username failed")
		return models.AuthResult{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := a.passwordHasher.Verify(credentials.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("password verification failed")
		return models.AuthResult{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Debug().Str("user_id", user.UserID).Msg("wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	token, err := a.tokenService.Issue(ctx, user)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("token issuance failed")
		return models.AuthResult{}, err
	}

	return models.AuthResult{User: user, Token: token}, nil
}

// ParseToken delegates to the TokenService. Every verification failure is
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	return a.tokenService.Verify(ctx, tokenString)
}

// Profile returns the public view of the user named by claims.
//
// Claims without a username fail with ErrInvalidTokenPayload; a username that
// no longer resolves to a stored user fails with store.ErrNoUserWasFound.
func (a *authService) Profile(ctx context.Context, claims models.Claims) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, claims, validators.FieldUsername); err != nil {
		log.Warn().Err(err).Str("subject", claims.UserID()).Msg("token claims have unexpected shape")
		return models.PublicUser{}, fmt.Errorf("%w: %w", ErrInvalidTokenPayload, err)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, claims.Username)
	if err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Msg("user search by username failed")
		}
		return models.PublicUser{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user.Public(), nil
}
