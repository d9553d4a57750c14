package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/open-inwoner/openklant/internal/constants"
	"github.com/open-inwoner/openklant/pkg/openklant"
)

// serve runs handler on listener until ctx is done, then shuts down
// gracefully.
func serve(ctx context.Context, listener net.Listener, handler http.Handler, logger openklant.Logger) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: constants.ServerReadHeaderTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("Listening", map[string]interface{}{"addr": listener.Addr().String()})
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	logger.Info("Stopped", map[string]interface{}{"addr": listener.Addr().String()})

	return nil
}

func listen(ctx context.Context, addr string) (net.Listener, error) {
	var lc net.ListenConfig

	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", addr, err)
	}

	return listener, nil
}
