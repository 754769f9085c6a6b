// Package config handles demo configuration and command-line argument parsing.
package config

import (
	"fmt"
	"time"

	"github.com/alexflint/go-arg"
)

// Config holds the pulse demo configuration.
type Config struct {
	Period time.Duration `arg:"-p,--period" default:"1s" help:"Delay between heartbeats"`
	Warmup time.Duration `arg:"--warmup" default:"500ms" help:"Delay before the first heartbeat"`
	Count  int64         `arg:"-n,--count" default:"10" help:"Number of heartbeats to emit (0 = until interrupted)"`
	Plain  bool          `arg:"--plain" help:"Print heartbeats as plain lines instead of the TUI"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "A heartbeat monitor demo for the scheduler/ticker/timer capability mocks"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "pulse 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := &Config{
		Period: time.Second,
		Warmup: 500 * time.Millisecond,
		Count:  10,
	}

	arg.MustParse(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the flag values describe a runnable monitor
func (cfg *Config) Validate() error {
	if cfg.Period <= 0 {
		return fmt.Errorf("period must be positive, got %v", cfg.Period)
	}

	if cfg.Warmup < 0 {
		return fmt.Errorf("warmup must not be negative, got %v", cfg.Warmup)
	}

	if cfg.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", cfg.Count)
	}

	return nil
}
