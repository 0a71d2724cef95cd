package auth

import (
	"context"
	"errors"

	"github.com/ferdiebergado/parentdesk/internal/platform/jwt"
)

type ctxKey int

const claimsCtxKey ctxKey = iota + 1

var errNoClaims = errors.New("no claims in context")

// ContextWithClaims returns a new context carrying verified claims.
//
//nolint:ireturn // returning context.Context is intentional: it's the standard context type
func ContextWithClaims(baseCtx context.Context, claims jwt.Claims) context.Context {
	return context.WithValue(baseCtx, claimsCtxKey, claims)
}

// ClaimsFromContext returns the claims stored by RequireToken.
func ClaimsFromContext(ctx context.Context) (jwt.Claims, error) {
	claims, ok := ctx.Value(claimsCtxKey).(jwt.Claims)
	if !ok || claims == nil {
		return nil, errNoClaims
	}
	return claims, nil
}

var errNoUserID = errors.New("claim user_id is missing or not an integer")

// UserIDFromContext returns the id of the authenticated caller.
func UserIDFromContext(ctx context.Context) (int64, error) {
	claims, err := ClaimsFromContext(ctx)
	if err != nil {
		return 0, err
	}

	id, ok := claims.UserID()
	if !ok {
		return 0, errNoUserID
	}
	return id, nil
}
