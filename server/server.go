package server

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
)

const shutdownTimeout = 5 * time.Second

// Serve runs the HTTP adapter on addr until ctx is done
func Serve(ctx context.Context, addr string, h Handler) error {
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Run()
	}()
	h.logger().Info("http server listening", "addr", addr, "run", h.Sim.ID())

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
		h.logger().Info("http server stopped")
		return nil
	}
}
