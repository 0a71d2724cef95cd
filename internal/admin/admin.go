package admin

import (
	"github.com/ferdiebergado/parentdesk/internal/platform/validation"
	"github.com/ferdiebergado/parentdesk/internal/user"
)

type Provider struct {
	UserSvc   user.Service
	Validator validation.Validator
}

type Module struct {
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func NewModule(provider *Provider) *Module {
	return &Module{
		handler: NewHandler(provider.UserSvc, provider.Validator),
	}
}
