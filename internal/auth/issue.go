package auth

import (
	"context"
	"fmt"

	"github.com/ferdiebergado/parentdesk/internal/platform/jwt"
	"github.com/ferdiebergado/parentdesk/internal/user"
)

// ClaimsFor returns the claims carried by an access token of u.
func ClaimsFor(u *user.User) jwt.Claims {
	role := u.Role
	if role == "" {
		role = jwt.RoleUser
	}

	return jwt.Claims{
		jwt.ClaimUserID: u.ID,
		jwt.ClaimEmail:  u.Email,
		jwt.ClaimRole:   role,
	}
}

// IssueToken issues an access token for the stored user with the given id.
func IssueToken(ctx context.Context, users UserFinder, verifier jwt.Verifier, userID int64) (string, error) {
	u, err := users.Find(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("find user %d: %w", userID, err)
	}

	token, err := verifier.Issue(ClaimsFor(u))
	if err != nil {
		return "", fmt.Errorf("issue token for user %d: %w", userID, err)
	}

	return token, nil
}
