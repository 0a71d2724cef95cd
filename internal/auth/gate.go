package auth

import (
	"errors"
	"fmt"

	"github.com/ferdiebergado/parentdesk/internal/platform/jwt"
)

var ErrForbidden = errors.New("forbidden")

// RequireRole allows claims whose role, defaulting to "user", equals role.
func RequireRole(claims jwt.Claims, role string) error {
	if got := claims.Role(); got != role {
		return fmt.Errorf("%w: role %q is not %q", ErrForbidden, got, role)
	}
	return nil
}

// RequireNotSelf rejects an action whose target is the caller.
func RequireNotSelf(claims jwt.Claims, targetUserID int64) error {
	callerID, ok := claims.UserID()
	if ok && callerID == targetUserID {
		return fmt.Errorf("%w: user %d cannot target itself", ErrForbidden, targetUserID)
	}
	return nil
}
