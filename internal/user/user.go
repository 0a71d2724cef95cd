package user

import "github.com/ferdiebergado/parentdesk/internal/platform/db"

type Module struct {
	svc Service
}

func (m *Module) Service() Service {
	return m.svc
}

func NewModule(dbExec db.Executor, txMgr db.TxManager) *Module {
	repo := NewRepository(dbExec)
	return &Module{
		svc: NewService(repo, txMgr),
	}
}
