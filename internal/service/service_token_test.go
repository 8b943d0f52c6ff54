package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-flight-board/internal/config"
	"github.com/MKhiriev/go-flight-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, now time.Time) *tokenService {
	t.Helper()

	svc := NewTokenService(config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-flight-board-test",
		TokenDuration: time.Hour,
	}).(*tokenService)
	svc.now = func() time.Time { return now }

	return svc
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestTokenService(t, issuedAt)
	ctx := context.Background()

	user := models.User{UserID: "0193a1b2-user", Username: "alice"}

	token, err := svc.Issue(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, 3, len(strings.Split(token.SignedString, ".")))

	claims, err := svc.Verify(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, claims.UserID())
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, "go-flight-board-test", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, issuedAt.Add(time.Hour), claims.ExpiresAt.Time, 0)
}

func TestTokenService_Verify_ExpiredTokenIsRejected(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestTokenService(t, issuedAt)
	ctx := context.Background()

	token, err := svc.Issue(ctx, models.User{UserID: "id", Username: "alice"})
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(time.Hour + time.Second) }

	_, err = svc.Verify(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestTokenService_Verify_FailuresAreIndistinguishable(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestTokenService(t, issuedAt)
	ctx := context.Background()

	token, err := svc.Issue(ctx, models.User{UserID: "id", Username: "alice"})
	require.NoError(t, err)

	otherKey := newTestTokenService(t, issuedAt)
	otherKey.signKey = "another-key"
	foreign, err := otherKey.Issue(ctx, models.User{UserID: "id", Username: "alice"})
	require.NoError(t, err)

	otherIssuer := newTestTokenService(t, issuedAt)
	otherIssuer.issuer = "someone-else"
	wrongIssuer, err := otherIssuer.Issue(ctx, models.User{UserID: "id", Username: "alice"})
	require.NoError(t, err)

	tampered := token.SignedString[:len(token.SignedString)-2] + "xx"

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-jwt"},
		{name: "tampered signature", token: tampered},
		{name: "signed with another key", token: foreign.SignedString},
		{name: "foreign issuer", token: wrongIssuer.SignedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Verify(ctx, tt.token)
			assert.Equal(t, ErrTokenIsExpiredOrInvalid, err)
			assert.Empty(t, claims.Username)
		})
	}
}
