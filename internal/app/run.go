package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/parentdesk/internal/config"
	"github.com/ferdiebergado/parentdesk/internal/middleware"
	"github.com/ferdiebergado/parentdesk/internal/pkg/logging"
	"github.com/ferdiebergado/parentdesk/internal/pkg/message"
	"github.com/ferdiebergado/parentdesk/internal/platform/db"
	"github.com/ferdiebergado/parentdesk/internal/platform/validation"
)

const (
	envAppEnv     = "APP_ENV"
	envSigningKey = "KEY"
	configFile    = "config.json"
)

// Run starts the API server and blocks until ctx is done.
func Run(ctx context.Context) error {
	slog.Info("Initializing...")

	cfg, err := LoadConfig(configFile)
	if err != nil {
		return err
	}

	logging.SetupLogger(cfg.App.Env, cfg.App.LogLevel, os.Stdout)

	signingKey, ok := os.LookupEnv(envSigningKey)
	if !ok {
		return fmt.Errorf(message.EnvErrFmt, envSigningKey)
	}

	dbConn, err := db.NewConnection(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	provider, err := NewProvider(cfg, signingKey, dbConn)
	if err != nil {
		return err
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		middleware.RequestID,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.CORS(cfg.CORS.AllowedOrigin),
	}

	api := New(cfg, provider, middlewares)
	if err := api.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}

// LoadConfig loads the .env file outside production, then the config file
// with its environment overrides, and validates the result.
func LoadConfig(cfgFile string) (*config.Config, error) {
	if os.Getenv(envAppEnv) != "production" {
		if err := env.Load(".env"); err != nil {
			slog.Warn("No .env file loaded.", "reason", err)
		}
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := validation.Check(validation.NewGoPlaygroundValidator(), cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
