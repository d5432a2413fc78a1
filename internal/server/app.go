// Package server initializes and runs the payroll stub server. It loads the
// fixtures, handles graceful shutdown and serves the HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/payrollview/internal/logging"
	"github.com/dmitrijs2005/payrollview/internal/server/api"
	"github.com/dmitrijs2005/payrollview/internal/server/config"
	"github.com/dmitrijs2005/payrollview/internal/server/fixtures"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	handler http.Handler
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	set, err := fixtures.LoadFile(c.FixturesPath)
	if err != nil {
		return nil, fmt.Errorf("fixtures init error: %w", err)
	}

	h := api.NewRouter(set, api.Options{
		Tokens:    c.Tokens,
		SecretKey: []byte(c.SecretKey),
		TokenTTL:  c.TokenTTL,
	}, logger)

	return &App{config: c, logger: logger, handler: h}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run listens on the configured address until ctx is cancelled or a
// termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	app.initSignalHandler(cancelFunc)

	ln, err := net.Listen("tcp", app.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", app.config.Addr, err)
	}
	return app.Serve(ctx, ln)
}

// Serve handles requests on ln until ctx is done, then drains in-flight
// requests for up to the shutdown timeout.
func (app *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: app.handler}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "Starting server...", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()
	app.logger.Info(shutdownCtx, "Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
