package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"ant-colony/config"
	"ant-colony/game"
	"ant-colony/logging"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	runCmd := newRunCmd()
	rootCmd := &cobra.Command{
		Use:   "antsim",
		Short: "Ant colony foraging simulation",
		Long: `antsim simulates an ant colony foraging on a grid.

Ants leave a home trail while searching and a food trail while carrying food
back to the nest. Both trails evaporate over time, so only well used paths
survive. Place food and walls with the mouse and watch the colony adapt.

Without a subcommand the simulation opens in a window.`,
		SilenceUsage: true,
		RunE:         runCmd.RunE,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default ./"+config.DefaultFile+" if present)")
	flags.String("log-level", "", "Log level: trace, debug, info, warn, error")
	flags.String("log-file", "", "Write logs to this file instead of stderr")
	flags.Uint64("seed", 0, "Random seed")
	flags.Int("ants", 0, "Number of ants")
	flags.Int("workers", 0, "Goroutines planning ant moves (0 = one per CPU, 1 = sequential)")
	flags.Int("brush", 0, "Brush radius for food and wall placement")

	rootCmd.AddCommand(
		runCmd,
		newTermCmd(),
		newServeCmd(),
		newHeadlessCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

// loadConfig resolves the effective configuration.
// Order: defaults -> config file -> ANTSIM_* environment -> flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("seed") {
		cfg.Simulation.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("ants") {
		cfg.Simulation.AntCount, _ = flags.GetInt("ants")
	}
	if flags.Changed("workers") {
		cfg.Simulation.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("brush") {
		cfg.Simulation.BrushRadius, _ = flags.GetInt("brush")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger writes to --log-file when given, else to fallback. The returned
// closer releases the file.
func newLogger(cmd *cobra.Command, cfg *config.Config, fallback io.Writer) (*slog.Logger, func(), error) {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		return logging.NewLogger(cfg.Logging.Level, fallback), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return logging.NewLogger(cfg.Logging.Level, f), func() { f.Close() }, nil
}

// setup loads the configuration and builds a logger and a simulation from it
func setup(cmd *cobra.Command, logOut io.Writer) (*config.Config, *game.Simulation, *slog.Logger, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	logger, closeLog, err := newLogger(cmd, cfg, logOut)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	sim, err := game.New(cfg.Simulation, game.WithLogger(logger))
	if err != nil {
		closeLog()
		return nil, nil, nil, nil, fmt.Errorf("creating simulation: %w", err)
	}
	return cfg, sim, logger, closeLog, nil
}
