package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ericogr/laro-arcade/internal/constants"
	"github.com/ericogr/laro-arcade/internal/logging"
	"github.com/ericogr/laro-arcade/internal/room"
)

const shutdownTimeout = 10 * time.Second

// serve runs the HTTP server until ctx is cancelled, then drains requests
// and stops every room.
func serve(ctx context.Context, addr string, handler http.Handler, rooms *room.Manager) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info("Shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	// Websocket connections are hijacked, so Shutdown does not wait for them;
	// stopping the rooms closes them.
	rooms.Shutdown()
	return srv.Shutdown(shutdownCtx)
}
