package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"ant-colony/tui"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

func newTermCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Run the simulation in the terminal",
		Long: `Run the simulation in the terminal. Large grids are scaled down to fit.

Controls: left mouse places food, right mouse places walls, space pauses,
r resets, q or esc quits. Logs are dropped unless --log-file is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, sim, logger, closeLog, err := setup(cmd, io.Discard)
			if err != nil {
				return err
			}
			defer closeLog()

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("opening terminal: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			host := tui.NewHost(screen, sim, cfg.Term.TickInterval, logger)
			if err := host.Run(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stopped at tick %d, delivered %d\n", sim.Stats().Tick, sim.Stats().FoodDelivered)
			return nil
		},
	}
}
