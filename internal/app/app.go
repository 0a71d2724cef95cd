package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/http/fcgi"
	"sync"
	"time"

	"github.com/ferdiebergado/parentdesk/internal/admin"
	"github.com/ferdiebergado/parentdesk/internal/auth"
	"github.com/ferdiebergado/parentdesk/internal/child"
	"github.com/ferdiebergado/parentdesk/internal/config"
	"github.com/ferdiebergado/parentdesk/internal/conversation"
	"github.com/ferdiebergado/parentdesk/internal/platform/router"
	"github.com/ferdiebergado/parentdesk/internal/user"
)

type App struct {
	server          *http.Server
	fastCGI         bool
	maxBodyBytes    int64
	router          router.Router
	middlewares     []func(http.Handler) http.Handler
	provider        *Provider
	stop            context.CancelFunc
	shutdownTimeout time.Duration

	setupOnce sync.Once
	handler   http.Handler
	mu        sync.Mutex
	listener  net.Listener
}

func New(cfg *config.Config, provider *Provider, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr: fmt.Sprintf(":%d", serverCfg.Port),
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	return &App{
		server:          server,
		fastCGI:         serverCfg.FastCGI,
		maxBodyBytes:    serverCfg.MaxBodyBytes,
		router:          provider.Router,
		middlewares:     middlewares,
		provider:        provider,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}
}

// Handler returns the fully wired request handler. The app middlewares wrap
// the whole router, the first one outermost, so they also see requests that
// match no route, such as CORS preflights.
func (a *App) Handler() http.Handler {
	a.setupOnce.Do(func() {
		a.setupRoutes()

		var h http.Handler = a.router
		for i := len(a.middlewares) - 1; i >= 0; i-- {
			h = a.middlewares[i](h)
		}
		a.handler = h
		a.server.Handler = h
	})
	return a.handler
}

func (a *App) setupRoutes() {
	userModule := user.NewModule(a.provider.DB, a.provider.TxMgr)

	authModule := auth.NewModule(&auth.Provider{
		Verifier: a.provider.Verifier,
		UserSvc:  userModule.Service(),
	})
	mountAuthRoutes(a.router, authModule)

	adminModule := admin.NewModule(&admin.Provider{
		UserSvc:   userModule.Service(),
		Validator: a.provider.Validator,
	})
	mountAdminRoutes(a.router, adminModule.Handler(), authModule.RequireToken())

	body := bodyPipeline{validator: a.provider.Validator, maxBytes: a.maxBodyBytes}
	mountChildRoutes(a.router, child.NewModule(a.provider.DB).Handler(), authModule.RequireToken(), body)
	mountConversationRoutes(a.router, conversation.NewModule(a.provider.DB).Handler(), authModule.RequireToken(), body)
}

// Start serves requests until ctx is done or the server fails. With FastCGI
// enabled the same routes are served over the FastCGI protocol, which makes
// the front server's parameters available to credential extraction.
func (a *App) Start(ctx context.Context) error {
	handler := a.Handler()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.serve(handler)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) serve(handler http.Handler) error {
	if !a.fastCGI {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %w", err)
		}
		slog.Info("Server has stopped.")
		return nil
	}

	l, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	a.mu.Lock()
	a.listener = l
	a.mu.Unlock()

	slog.Info("FastCGI server listening...", "address", a.server.Addr)
	if err := fcgi.Serve(l, handler); err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("serve fastcgi: %w", err)
	}
	slog.Info("FastCGI server has stopped.")
	return nil
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	if a.fastCGI {
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.listener == nil {
			return nil
		}
		if err := a.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("close fastcgi listener: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
