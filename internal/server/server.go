package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/fivetwenty-io/swapi/internal/constants"
	"github.com/fivetwenty-io/swapi/pkg/swapi"
)

// NewHandler returns the complete HTTP handler of the service.
func NewHandler(views Views, logger swapi.Logger) http.Handler {
	r := NewRouter(constants.ServiceName, logger)
	RegisterHandlers(r, views, logger)

	return r
}

// Serve listens on addr and serves handler until ctx is cancelled, then
// shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger swapi.Logger) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return ServeListener(ctx, listener, handler, logger)
}

// ServeListener is Serve on an existing listener.
func ServeListener(ctx context.Context, listener net.Listener, handler http.Handler, logger swapi.Logger) error {
	if logger == nil {
		logger = swapi.NoopLogger{}
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: constants.ServerReadHeaderTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("starting to listen for connections", map[string]interface{}{"addr": listener.Addr().String()})
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.ServerShutdownTimeout)
	defer cancel()

	logger.Info("shutting down", nil)

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}

	<-errCh

	return nil
}
