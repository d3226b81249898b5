// AngelaMos | 2026
// verifier.go

package auth

import (
	"context"
	"fmt"

	"github.com/grocerly/backoffice/internal/core"
	"github.com/grocerly/backoffice/internal/middleware"
)

// BlacklistChecker reports whether an access token's jti has been revoked
// before its natural expiry. Satisfied by Service.
type BlacklistChecker interface {
	IsAccessTokenBlacklisted(ctx context.Context, jti string) (bool, error)
}

// Verifier is the full access-token check: signature and standard claims
// via the JWT manager, then the redis revocation list. A token revoked by
// logout fails here even though its signature is still valid. Fails closed
// when the revocation list cannot be consulted.
type Verifier struct {
	jwt       *JWTManager
	blacklist BlacklistChecker
}

func NewVerifier(jwt *JWTManager, blacklist BlacklistChecker) *Verifier {
	return &Verifier{
		jwt:       jwt,
		blacklist: blacklist,
	}
}

func (v *Verifier) VerifyAccessToken(
	ctx context.Context,
	tokenString string,
) (*middleware.AccessTokenClaims, error) {
	claims, err := v.jwt.VerifyAccessToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	blacklisted, err := v.blacklist.IsAccessTokenBlacklisted(ctx, claims.JTI)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}

	if blacklisted {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenRevoked)
	}

	return claims, nil
}

var _ middleware.TokenVerifier = (*Verifier)(nil)
