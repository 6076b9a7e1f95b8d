// Package config loads the application configuration: simulation parameters
// plus the settings of each host (window, terminal, HTTP server).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"ant-colony/game"
	"ant-colony/logging"

	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no --config flag is given and it exists
const DefaultFile = "antsim.yaml"

type Config struct {
	Simulation game.Config   `json:"simulation" yaml:"simulation"`
	Logging    LoggingConfig `json:"logging" yaml:"logging"`
	Window     WindowConfig  `json:"window" yaml:"window"`
	Server     ServerConfig  `json:"server" yaml:"server"`
	Term       TermConfig    `json:"term" yaml:"term"`
}

type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error
	Level string `json:"level" yaml:"level"`
}

// WindowConfig configures the raylib host
type WindowConfig struct {
	Width    int `json:"width" yaml:"width"`
	Height   int `json:"height" yaml:"height"`
	FPS      int `json:"fps" yaml:"fps"`
	CellSize int `json:"cell_size" yaml:"cell_size"` // 0 fits the grid to the window
}

// ServerConfig configures the HTTP host
type ServerConfig struct {
	Addr         string        `json:"addr" yaml:"addr"`
	TickInterval time.Duration `json:"tick_interval" yaml:"tick_interval"`
}

// TermConfig configures the terminal host
type TermConfig struct {
	TickInterval time.Duration `json:"tick_interval" yaml:"tick_interval"`
}

func Default() *Config {
	return &Config{
		Simulation: game.DefaultConfig(),
		Logging: LoggingConfig{
			Level: "info",
		},
		Window: WindowConfig{
			Width:  1000,
			Height: 800,
			FPS:    60,
		},
		Server: ServerConfig{
			Addr:         "127.0.0.1:8080",
			TickInterval: 16 * time.Millisecond,
		},
		Term: TermConfig{
			TickInterval: 50 * time.Millisecond,
		},
	}
}

// Load reads path (or DefaultFile when path is empty and the file exists)
// over the defaults, then applies environment overrides.
// Order: defaults -> YAML file -> ANTSIM_* environment variables
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile decodes a YAML file over the defaults. Keys absent from the file keep their default.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Simulation.Validate(); err != nil {
		return err
	}
	if c.Logging.Level != "" && !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: trace, debug, info, warn, error)", c.Logging.Level)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window must be at least 1x1, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.Window.FPS)
	}
	if c.Window.CellSize < 0 {
		return fmt.Errorf("cell_size must be non-negative, got %d", c.Window.CellSize)
	}
	if c.Server.Addr == "" {
		return errors.New("server addr must not be empty")
	}
	if c.Server.TickInterval <= 0 || c.Term.TickInterval <= 0 {
		return fmt.Errorf("tick intervals must be positive, got server=%v term=%v",
			c.Server.TickInterval, c.Term.TickInterval)
	}
	return nil
}

// YAML renders the effective configuration
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("ANTSIM_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("ANTSIM_SEED: %w", err)
		}
		cfg.Simulation.Seed = n
	}

	if v := os.Getenv("ANTSIM_ANTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ANTSIM_ANTS: %w", err)
		}
		cfg.Simulation.AntCount = n
	}

	if v := os.Getenv("ANTSIM_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ANTSIM_WORKERS: %w", err)
		}
		cfg.Simulation.Workers = n
	}

	if v := os.Getenv("ANTSIM_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	if v := os.Getenv("ANTSIM_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	return nil
}
