package jwt

import "errors"

// Verification failures. They are distinct so that logs and tests can tell them
// apart, but callers facing the network must collapse them into one response.
var (
	ErrUnauthenticated = errors.New("jwt: no credential presented")
	ErrMalformed       = errors.New("jwt: malformed token")
	ErrBadSignature    = errors.New("jwt: signature mismatch")
	ErrExpired         = errors.New("jwt: token expired")
)

// ErrDecode is returned by DecodeSegment on input that is not unpadded base64url.
var ErrDecode = errors.New("jwt: invalid base64url segment")
