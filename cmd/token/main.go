// Command token prints a freshly issued access token for a stored user.
//
//	token -user 42
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/parentdesk/internal/app"
	"github.com/ferdiebergado/parentdesk/internal/auth"
	"github.com/ferdiebergado/parentdesk/internal/pkg/logging"
	"github.com/ferdiebergado/parentdesk/internal/pkg/message"
	"github.com/ferdiebergado/parentdesk/internal/platform/db"
	"github.com/ferdiebergado/parentdesk/internal/platform/jwt"
	"github.com/ferdiebergado/parentdesk/internal/platform/validation"
	"github.com/ferdiebergado/parentdesk/internal/user"
)

type options struct {
	UserID     int64  `json:"user" validate:"gt=0"`
	ConfigFile string `json:"config" validate:"required"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		slog.Error("Token issuance failed.", "reason", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	var opts options

	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.Int64Var(&opts.UserID, "user", 0, "id of the user to issue a token for")
	fs.StringVar(&opts.ConfigFile, "config", "config.json", "path to the config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := validation.Check(validation.NewGoPlaygroundValidator(), opts); err != nil {
		return err
	}

	logging.SetupLogger("production", "error", os.Stderr)

	cfg, err := app.LoadConfig(opts.ConfigFile)
	if err != nil {
		return err
	}

	signingKey, ok := os.LookupEnv("KEY")
	if !ok {
		return fmt.Errorf(message.EnvErrFmt, "KEY")
	}

	verifier, err := jwt.NewVerifier(cfg.JWT, signingKey)
	if err != nil {
		return fmt.Errorf("new verifier: %w", err)
	}

	conn, err := db.NewConnection(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer conn.Close()

	users := user.NewModule(conn, db.NewSQLTxManager(conn)).Service()

	token, err := auth.IssueToken(ctx, users, verifier, opts.UserID)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, token)
	return err
}
