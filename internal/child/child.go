package child

import (
	"time"

	"github.com/ferdiebergado/parentdesk/internal/platform/db"
)

type Module struct {
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func NewModule(dbExec db.Executor) *Module {
	svc := NewService(NewRepository(dbExec), time.Now)
	return &Module{
		handler: NewHandler(svc),
	}
}
