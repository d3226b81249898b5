// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/grocerly/backoffice/internal/authz"
	"github.com/grocerly/backoffice/internal/core"
)

const (
	UserIDKey  contextKey = "user_id"
	SubjectKey contextKey = "subject"
	ClaimsKey  contextKey = "jwt_claims"
)

type TokenVerifier interface {
	VerifyAccessToken(
		ctx context.Context,
		token string,
	) (*AccessTokenClaims, error)
}

type AccessTokenClaims struct {
	UserID       string
	JTI          string
	IsAdmin      bool
	IsStaff      bool
	IsSuperuser  bool
	TokenVersion int
	ExpiresAt    time.Time
}

func (c *AccessTokenClaims) Subject() authz.Subject {
	return authz.Subject{
		UserID:        c.UserID,
		Authenticated: true,
		IsAdmin:       c.IsAdmin,
		IsStaff:       c.IsStaff,
		IsSuperuser:   c.IsSuperuser,
	}
}

func Authenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token == "" {
				core.JSONError(
					w,
					core.UnauthorizedError("missing authorization token"),
				)
				return
			}

			claims, err := verifier.VerifyAccessToken(r.Context(), token)
			if err != nil {
				handleAuthError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

// OptionalAuth resolves a subject when a valid token is present but never
// rejects the request. Registration uses this so an admin's token can
// authorize creating another admin account.
func OptionalAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token != "" {
				claims, err := verifier.VerifyAccessToken(r.Context(), token)
				if err == nil {
					r = r.WithContext(withClaims(r.Context(), claims))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission gates a route on the access policy decision table.
func RequirePermission(
	action authz.Action,
	resource authz.Resource,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sub := GetSubject(r.Context())

			if !sub.Authenticated {
				core.JSONError(
					w,
					core.UnauthorizedError("authentication required"),
				)
				return
			}

			if !authz.Allowed(sub, action, resource) {
				core.JSONError(
					w,
					core.ForbiddenError("insufficient permissions"),
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub := GetSubject(r.Context())

		if !sub.Authenticated {
			core.JSONError(
				w,
				core.UnauthorizedError("authentication required"),
			)
			return
		}

		if !sub.IsAdmin {
			core.JSONError(
				w,
				core.ForbiddenError("insufficient permissions"),
			)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func withClaims(
	ctx context.Context,
	claims *AccessTokenClaims,
) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, SubjectKey, claims.Subject())
	ctx = context.WithValue(ctx, ClaimsKey, claims)
	return ctx
}

func handleAuthError(w http.ResponseWriter, err error) {
	if core.IsAppError(err) {
		core.JSONError(w, err)
		return
	}

	switch {
	case errors.Is(err, core.ErrTokenExpired):
		core.JSONError(w, core.TokenExpiredError())
	case errors.Is(err, core.ErrTokenRevoked):
		core.JSONError(w, core.TokenRevokedError())
	default:
		core.JSONError(w, core.TokenInvalidError())
	}
}

func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// GetSubject returns the requester's policy subject, or authz.Anonymous
// when no verified token is attached to the context. Missing role
// information therefore always resolves to deny.
func GetSubject(ctx context.Context) authz.Subject {
	if sub, ok := ctx.Value(SubjectKey).(authz.Subject); ok {
		return sub
	}
	return authz.Anonymous
}

func GetClaims(ctx context.Context) *AccessTokenClaims {
	if claims, ok := ctx.Value(ClaimsKey).(*AccessTokenClaims); ok {
		return claims
	}
	return nil
}

func IsAuthenticated(ctx context.Context) bool {
	return GetSubject(ctx).Authenticated
}

func IsAdmin(ctx context.Context) bool {
	return GetSubject(ctx).IsAdmin
}
