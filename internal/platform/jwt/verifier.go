package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/ferdiebergado/parentdesk/internal/config"
)

// MinKeyLength is the minimum signing key length in bytes.
const MinKeyLength = 32

// Verifier issues access tokens and answers whether a request carries a valid one.
// Implementations are stateless and safe for concurrent use.
type Verifier interface {
	// Issue signs claims after injecting iat, exp and iss, which always
	// replace caller supplied values of the same name.
	Issue(claims Claims) (string, error)
	// Verify checks a raw token string.
	Verify(token string) (Claims, error)
	// VerifyRequest extracts the bearer credential from req and verifies it.
	VerifyRequest(req Request) (Claims, error)
}

type verifier struct {
	key       []byte
	issuer    string
	ttl       time.Duration
	signer    Signer
	extractor *Extractor
	now       func() time.Time
}

var _ Verifier = (*verifier)(nil)

// Option configures a Verifier.
type Option func(*verifier)

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(v *verifier) {
		v.now = now
	}
}

// WithSigner replaces the HS256 signer.
func WithSigner(s Signer) Option {
	return func(v *verifier) {
		v.signer = s
	}
}

// WithExtractor replaces the extractor built from cfg.
func WithExtractor(e *Extractor) Option {
	return func(v *verifier) {
		v.extractor = e
	}
}

// NewVerifier creates a Verifier from the JWT config and the signing key.
func NewVerifier(cfg *config.JWT, key string, opts ...Option) (Verifier, error) {
	if cfg == nil {
		return nil, errors.New("jwt config is nil")
	}

	if len(key) < MinKeyLength {
		return nil, fmt.Errorf("signing key must be at least %d bytes long, got %d", MinKeyLength, len(key))
	}

	if cfg.TTL.Duration < time.Second {
		return nil, fmt.Errorf("token ttl must be at least one second, got %s", cfg.TTL.Duration)
	}

	v := &verifier{
		key:       []byte(key),
		issuer:    cfg.Issuer,
		ttl:       cfg.TTL.Duration,
		signer:    NewHMACSigner(),
		extractor: NewExtractor(cfg.AuthVar, cfg.RedirectAuthVar),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(v)
	}

	return v, nil
}

func (v *verifier) Issue(claims Claims) (string, error) {
	iat := v.now().Unix()

	c := claims.Clone()
	c[ClaimIssuedAt] = iat
	c[ClaimExpiresAt] = iat + int64(v.ttl/time.Second)
	c[ClaimIssuer] = v.issuer

	encHeader, encPayload, err := Build(c, NewHeader(v.signer.Alg()))
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	sig := v.signer.Sign(SigningInput(encHeader, encPayload), v.key)
	if sig == nil {
		return "", errors.New("sign token: empty signature")
	}

	return Join(encHeader, encPayload, EncodeSegment(sig)), nil
}

func (v *verifier) VerifyRequest(req Request) (Claims, error) {
	token, ok := v.extractor.Extract(req)
	if !ok {
		return nil, ErrUnauthenticated
	}

	return v.Verify(token)
}

func (v *verifier) Verify(token string) (Claims, error) {
	now := v.now()

	encHeader, encPayload, encSig, err := Split(token)
	if err != nil {
		return nil, err
	}

	if err := ParseHeader(encHeader, v.signer.Alg()); err != nil {
		return nil, err
	}

	sig, err := DecodeSegment(encSig)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSignature, err)
	}

	// Issued signatures are unpadded; a padded spelling is a different credential.
	if EncodeSegment(sig) != encSig {
		return nil, fmt.Errorf("%w: signature is not in canonical form", ErrBadSignature)
	}

	if !v.signer.Verify(SigningInput(encHeader, encPayload), sig, v.key) {
		return nil, ErrBadSignature
	}

	claims, err := ParsePayload(encPayload)
	if err != nil {
		return nil, err
	}

	exp, err := claims.ExpiresAt()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExpired, err)
	}

	if exp.Unix() < now.Unix() {
		return nil, fmt.Errorf("%w: at %s", ErrExpired, exp.UTC().Format(time.RFC3339))
	}

	return claims, nil
}
