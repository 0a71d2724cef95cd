package jwt

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"strconv"
	"time"

	golangjwt "github.com/golang-jwt/jwt/v5"
)

const (
	ClaimUserID    = "user_id"
	ClaimEmail     = "email"
	ClaimRole      = "role"
	ClaimIssuedAt  = "iat"
	ClaimExpiresAt = "exp"
	ClaimIssuer    = "iss"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Claims is the decoded payload of a token. Numbers decoded from a token are
// json.Number values.
type Claims map[string]any

// Clone returns a shallow copy of c.
func (c Claims) Clone() Claims {
	if c == nil {
		return Claims{}
	}
	return maps.Clone(c)
}

// UserID returns the user_id claim as an integer.
func (c Claims) UserID() (int64, bool) {
	return toInt64(c[ClaimUserID])
}

func (c Claims) Email() string {
	s, _ := c[ClaimEmail].(string)
	return s
}

// Role returns the role claim, or RoleUser when the claim is absent or empty.
func (c Claims) Role() string {
	if s, ok := c[ClaimRole].(string); ok && s != "" {
		return s
	}
	return RoleUser
}

func (c Claims) Issuer() string {
	iss, err := golangjwt.MapClaims(c).GetIssuer()
	if err != nil {
		return ""
	}
	return iss
}

// ExpiresAt returns the exp claim. A missing or non-numeric exp is an error.
func (c Claims) ExpiresAt() (time.Time, error) {
	exp, err := golangjwt.MapClaims(c).GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("get expiration time: %w", err)
	}
	if exp == nil {
		return time.Time{}, fmt.Errorf("claim %q is missing", ClaimExpiresAt)
	}
	return exp.Time, nil
}

// IssuedAt returns the iat claim, or the zero time when it cannot be read.
func (c Claims) IssuedAt() time.Time {
	iat, err := golangjwt.MapClaims(c).GetIssuedAt()
	if err != nil || iat == nil {
		return time.Time{}
	}
	return iat.Time
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		if n != math.Trunc(n) || n > math.MaxInt64 || n < math.MinInt64 {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}
