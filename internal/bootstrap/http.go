package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alkira/auth-gateway/config"
	httpx "github.com/alkira/auth-gateway/internal/http"
	"github.com/alkira/auth-gateway/web"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunHTTPServer builds the handler chain, starts the server, and blocks until
// the context is cancelled or the listener fails. Shutdown drains in-flight
// requests for up to ten seconds.
func RunHTTPServer(ctx context.Context, cfg *HTTPServerConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	handler := buildHTTPHandler(cfg.Services, logger)

	addr := cfg.Config.HTTP.Addr
	if addr == "" {
		addr = ":3001"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.Info("HTTP server stopped")
		return nil
	})

	return g.Wait()
}

// buildHTTPHandler assembles the middleware chain.
// Order: Recover -> Logging -> RequestID -> Router.
func buildHTTPHandler(services ServiceContainer, logger *slog.Logger) http.Handler {
	router := httpx.NewRouter(httpx.RouterServices{
		Auth:    services.Auth,
		Signup:  services.Signup,
		Profile: services.Profile,
		WebFS:   web.StaticFS(),
	})

	h := httpx.RequestID()(router)
	h = httpx.Logging(logger)(h)
	h = httpx.Recover(logger)(h)
	return h
}
