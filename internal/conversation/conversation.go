package conversation

import "github.com/ferdiebergado/parentdesk/internal/platform/db"

type Module struct {
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func NewModule(dbExec db.Executor) *Module {
	return &Module{
		handler: NewHandler(NewService(NewRepository(dbExec))),
	}
}
