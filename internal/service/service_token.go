package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-flight-board/internal/config"
	"github.com/MKhiriev/go-flight-board/internal/logger"
	"github.com/MKhiriev/go-flight-board/internal/utils"
	"github.com/MKhiriev/go-flight-board/models"
)

// tokenService issues and verifies HS256 JWT tokens with a process-wide
// sign key. Rotating the key invalidates every token issued before.
type tokenService struct {
	signKey  string
	issuer   string
	duration time.Duration

	// now is the clock used for both "iat"/"exp" and expiry checks.
	now func() time.Time
}

// NewTokenService constructs a TokenService from the application config.
// All state is read-only after construction.
func NewTokenService(cfg config.App) TokenService {
	return &tokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		now:      time.Now,
	}
}

// Issue signs a token for user carrying its ID and username.
func (s *tokenService) Issue(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, user, s.duration, s.signKey, s.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify validates tokenString and returns its claims.
//
// A bad signature, malformed token, foreign signing method, wrong issuer and
// expiry are all reported as the same ErrTokenIsExpiredOrInvalid; the cause
// is only logged.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Claims, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer, s.now)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Claims{}, ErrTokenIsExpiredOrInvalid
	}

	return token.Claims, nil
}
