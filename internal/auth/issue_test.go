package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ferdiebergado/parentdesk/internal/auth"
	"github.com/ferdiebergado/parentdesk/internal/config"
	timex "github.com/ferdiebergado/parentdesk/internal/pkg/time"
	"github.com/ferdiebergado/parentdesk/internal/platform/jwt"
	"github.com/ferdiebergado/parentdesk/internal/user"
)

func TestIssueToken(t *testing.T) {
	t.Parallel()

	cfg := &config.JWT{Issuer: "parentdesk", TTL: timex.Duration{Duration: time.Hour}}
	verifier, err := jwt.NewVerifier(cfg, "0123456789abcdef0123456789abcdef")
	if err != nil {
		t.Fatalf("jwt.NewVerifier() = %v", err)
	}

	users := &user.StubService{
		FindFunc: func(_ context.Context, userID int64) (*user.User, error) {
			switch userID {
			case 1:
				return &user.User{ID: 1, Email: "root@example.com", Role: "admin"}, nil
			case 2:
				return &user.User{ID: 2, Email: "ana@example.com"}, nil
			default:
				return nil, user.ErrNotFound
			}
		},
	}

	tests := []struct {
		name     string
		userID   int64
		wantRole string
		wantErr  error
	}{
		{"admin", 1, jwt.RoleAdmin, nil},
		{"user without stored role", 2, jwt.RoleUser, nil},
		{"unknown user", 3, "", user.ErrNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			token, err := auth.IssueToken(context.Background(), users, verifier, tc.userID)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("auth.IssueToken() = %v, want: %v", err, tc.wantErr)
			}
			if tc.wantErr != nil {
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				t.Fatalf("verifier.Verify() = %v", err)
			}

			if id, ok := claims.UserID(); !ok || id != tc.userID {
				t.Errorf("claims.UserID() = %d, %v, want: %d, %v", id, ok, tc.userID, true)
			}

			if got := claims[jwt.ClaimRole]; got != tc.wantRole {
				t.Errorf("claims[%q] = %v, want: %q", jwt.ClaimRole, got, tc.wantRole)
			}

			if claims.Email() == "" {
				t.Error("claims.Email() is empty")
			}
		})
	}
}
