// AngelaMos | 2026
// verifier_test.go

package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/grocerly/backoffice/internal/config"
	"github.com/grocerly/backoffice/internal/core"
)

type mockBlacklistChecker struct {
	mock.Mock
}

func (m *mockBlacklistChecker) IsAccessTokenBlacklisted(
	ctx context.Context,
	jti string,
) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}

func newTestJWTManager(t *testing.T) *JWTManager {
	t.Helper()

	dir := t.TempDir()
	privatePath := filepath.Join(dir, "jwt_private.pem")
	publicPath := filepath.Join(dir, "jwt_public.pem")
	require.NoError(t, GenerateKeyPair(privatePath, publicPath))

	manager, err := NewJWTManager(config.JWTConfig{
		PrivateKeyPath:    privatePath,
		PublicKeyPath:     publicPath,
		AccessTokenExpire: 15 * time.Minute,
		Issuer:            "grocerly-test",
		Audience:          "grocerly-api",
	})
	require.NoError(t, err)

	return manager
}

func TestVerifier_AcceptsUnrevokedToken(t *testing.T) {
	manager := newTestJWTManager(t)

	tokenString, err := manager.CreateAccessToken(AccessTokenClaims{
		UserID:       "user-1",
		IsAdmin:      true,
		TokenVersion: 3,
	})
	require.NoError(t, err)

	blacklist := new(mockBlacklistChecker)
	blacklist.On("IsAccessTokenBlacklisted", mock.Anything, mock.Anything).
		Return(false, nil)

	verifier := NewVerifier(manager, blacklist)

	claims, err := verifier.VerifyAccessToken(context.Background(), tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, 3, claims.TokenVersion)
	assert.NotEmpty(t, claims.JTI)
	assert.False(t, claims.ExpiresAt.IsZero())
	blacklist.AssertCalled(
		t,
		"IsAccessTokenBlacklisted",
		mock.Anything,
		claims.JTI,
	)
}

func TestVerifier_RejectsRevokedToken(t *testing.T) {
	manager := newTestJWTManager(t)

	tokenString, err := manager.CreateAccessToken(AccessTokenClaims{
		UserID: "user-1",
	})
	require.NoError(t, err)

	blacklist := new(mockBlacklistChecker)
	blacklist.On("IsAccessTokenBlacklisted", mock.Anything, mock.Anything).
		Return(true, nil)

	verifier := NewVerifier(manager, blacklist)

	claims, err := verifier.VerifyAccessToken(context.Background(), tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, core.ErrTokenRevoked)
}

func TestVerifier_FailsClosedOnBlacklistError(t *testing.T) {
	manager := newTestJWTManager(t)

	tokenString, err := manager.CreateAccessToken(AccessTokenClaims{
		UserID: "user-1",
	})
	require.NoError(t, err)

	blacklist := new(mockBlacklistChecker)
	blacklist.On("IsAccessTokenBlacklisted", mock.Anything, mock.Anything).
		Return(false, errors.New("redis down"))

	verifier := NewVerifier(manager, blacklist)

	claims, err := verifier.VerifyAccessToken(context.Background(), tokenString)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestVerifier_SkipsBlacklistForInvalidToken(t *testing.T) {
	manager := newTestJWTManager(t)

	blacklist := new(mockBlacklistChecker)

	verifier := NewVerifier(manager, blacklist)

	claims, err := verifier.VerifyAccessToken(
		context.Background(),
		"not-a-token",
	)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
	blacklist.AssertNotCalled(
		t,
		"IsAccessTokenBlacklisted",
		mock.Anything,
		mock.Anything,
	)
}
