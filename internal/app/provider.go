package app

import (
	"database/sql"
	"fmt"

	"github.com/ferdiebergado/parentdesk/internal/config"
	"github.com/ferdiebergado/parentdesk/internal/platform/db"
	"github.com/ferdiebergado/parentdesk/internal/platform/jwt"
	"github.com/ferdiebergado/parentdesk/internal/platform/router"
	"github.com/ferdiebergado/parentdesk/internal/platform/validation"
)

type Provider struct {
	DB        *sql.DB
	Verifier  jwt.Verifier
	Validator validation.Validator
	Router    router.Router
	TxMgr     db.TxManager
}

// NewProvider builds the shared dependencies of the application.
func NewProvider(cfg *config.Config, signingKey string, dbConn *sql.DB) (*Provider, error) {
	verifier, err := jwt.NewVerifier(cfg.JWT, signingKey)
	if err != nil {
		return nil, fmt.Errorf("new verifier: %w", err)
	}

	return &Provider{
		DB:        dbConn,
		Verifier:  verifier,
		Validator: validation.NewGoPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
		TxMgr:     db.NewSQLTxManager(dbConn),
	}, nil
}
