package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ant-colony/server"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the simulation behind an HTTP API",
		Long: `Run the simulation on a fixed tick interval and expose it over HTTP.

  GET  /api/healthz
  GET  /api/snapshot
  GET  /api/stats
  GET  /api/config
  POST /api/events   {"type":"place_food","x":10,"y":12}

A quit event stops the server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, sim, logger, closeLog, err := setup(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			if addr, _ := cmd.Flags().GetString("addr"); cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			loop := NewTickLoop(sim, cfg.Server.TickInterval, logger)
			loop.Start(ctx)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				// a quit event ends the loop, which takes the server down with it
				select {
				case <-loop.Done():
					cancel()
				case <-gctx.Done():
				}
				return nil
			})
			g.Go(func() error {
				return server.Serve(gctx, cfg.Server.Addr, server.Handler{Sim: sim, Logger: logger})
			})

			err = g.Wait()
			loop.Stop()
			logger.Info("serve finished", "stats", sim.Stats())
			return err
		},
	}
	cmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
	return cmd
}
