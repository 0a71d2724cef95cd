package auth

import (
	"net/http"

	"github.com/ferdiebergado/parentdesk/internal/platform/jwt"
	"github.com/ferdiebergado/parentdesk/internal/user"
)

type Provider struct {
	Verifier jwt.Verifier
	UserSvc  user.Service
}

type Module struct {
	handler      *Handler
	requireToken func(http.Handler) http.Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

// RequireToken returns the token middleware bound to the module's verifier.
func (m *Module) RequireToken() func(http.Handler) http.Handler {
	return m.requireToken
}

func NewModule(provider *Provider) *Module {
	return &Module{
		handler:      NewHandler(provider.UserSvc),
		requireToken: RequireToken(provider.Verifier),
	}
}
