package jwt

import (
	"errors"
)

type StubVerifier struct {
	IssueFunc         func(claims Claims) (string, error)
	VerifyFunc        func(token string) (Claims, error)
	VerifyRequestFunc func(req Request) (Claims, error)
}

var _ Verifier = (*StubVerifier)(nil)

func (s *StubVerifier) Issue(claims Claims) (string, error) {
	if s.IssueFunc == nil {
		return "", errors.New("Issue() not implemented by stub")
	}

	return s.IssueFunc(claims)
}

func (s *StubVerifier) Verify(token string) (Claims, error) {
	if s.VerifyFunc == nil {
		return nil, errors.New("Verify() not implemented by stub")
	}

	return s.VerifyFunc(token)
}

func (s *StubVerifier) VerifyRequest(req Request) (Claims, error) {
	if s.VerifyRequestFunc == nil {
		return nil, errors.New("VerifyRequest() not implemented by stub")
	}

	return s.VerifyRequestFunc(req)
}
