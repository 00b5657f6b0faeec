// Package config loads blockfall settings from BLOCKFALL_* environment
// variables. Binaries layer command-line flags on top with Config.Flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/plus3/blockfall/bag"
	"github.com/plus3/blockfall/game"
)

// Config is the runtime configuration shared by the game and soak binaries.
type Config struct {
	FallInterval time.Duration `env:"BLOCKFALL_FALL_INTERVAL" envDefault:"500ms"`
	LockDelay    time.Duration `env:"BLOCKFALL_LOCK_DELAY"    envDefault:"500ms"`
	// Seed fixes the piece sequence. Zero picks a random seed.
	Seed     uint64 `env:"BLOCKFALL_SEED"      envDefault:"0"`
	TickRate int    `env:"BLOCKFALL_TICK_RATE" envDefault:"24"`
	CellSize int    `env:"BLOCKFALL_CELL_SIZE" envDefault:"24"`
	Preview  int    `env:"BLOCKFALL_PREVIEW"   envDefault:"3"`
	DebugUI  bool   `env:"BLOCKFALL_DEBUG_UI"  envDefault:"false"`

	SoakDuration time.Duration `env:"BLOCKFALL_SOAK_DURATION" envDefault:"10s"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Flags registers a flag for every setting on fs, defaulting to the current
// values so flags override the environment.
func (c *Config) Flags(fs *flag.FlagSet) {
	fs.DurationVar(&c.FallInterval, "fall", c.FallInterval, "time a piece hangs on a row before gravity moves it")
	fs.DurationVar(&c.LockDelay, "lock", c.LockDelay, "time after the last move or rotation before a landed piece locks")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "piece sequence seed (0 for random)")
	fs.IntVar(&c.TickRate, "tps", c.TickRate, "updates per second")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.Preview, "preview", c.Preview, "number of upcoming pieces shown")
	fs.BoolVar(&c.DebugUI, "debug", c.DebugUI, "show the imgui inspector")
	fs.DurationVar(&c.SoakDuration, "duration", c.SoakDuration, "soak run length")
}

// Validate reports every setting that is out of range.
func (c Config) Validate() error {
	var errs []error
	if c.FallInterval <= 0 {
		errs = append(errs, fmt.Errorf("fall interval must be positive, got %s", c.FallInterval))
	}
	if c.LockDelay < 0 {
		errs = append(errs, fmt.Errorf("lock delay must not be negative, got %s", c.LockDelay))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate must be positive, got %d", c.TickRate))
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %d", c.CellSize))
	}
	if c.Preview < 0 || c.Preview > bag.Size {
		errs = append(errs, fmt.Errorf("preview must be between 0 and %d, got %d", bag.Size, c.Preview))
	}
	if c.SoakDuration < 0 {
		errs = append(errs, fmt.Errorf("soak duration must not be negative, got %s", c.SoakDuration))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Timing returns the gravity settings for game.WithTiming.
func (c Config) Timing() game.Timing {
	return game.Timing{FallInterval: c.FallInterval, LockDelay: c.LockDelay}
}

// GameOptions returns the options that start a session with these settings.
func (c Config) GameOptions() []game.Option {
	opts := []game.Option{game.WithTiming(c.Timing())}
	if c.Seed != 0 {
		opts = append(opts, game.WithSeed(c.Seed))
	}
	return opts
}

// TickInterval is the wall-clock length of one update.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
