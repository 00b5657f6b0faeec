package config_test

import (
	"flag"
	"testing"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.FallInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.LockDelay)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, 24, cfg.TickRate)
	assert.Equal(t, 3, cfg.Preview)
	assert.False(t, cfg.DebugUI)
	assert.Equal(t, game.DefaultTiming(), cfg.Timing())
	assert.Len(t, cfg.GameOptions(), 1)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BLOCKFALL_FALL_INTERVAL", "250ms")
	t.Setenv("BLOCKFALL_SEED", "99")
	t.Setenv("BLOCKFALL_TICK_RATE", "60")
	t.Setenv("BLOCKFALL_DEBUG_UI", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.FallInterval)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.True(t, cfg.DebugUI)
	assert.Equal(t, time.Second/60, cfg.TickInterval())
	assert.Len(t, cfg.GameOptions(), 2)

	a := game.New(cfg.GameOptions()...)
	b := game.New(cfg.GameOptions()...)
	assert.Equal(t, a.Queue(7), b.Queue(7), "a fixed seed repeats the sequence")
	assert.Equal(t, 250*time.Millisecond, a.Timing().FallInterval)
}

func TestLoadErrors(t *testing.T) {
	t.Run("unparseable", func(t *testing.T) {
		t.Setenv("BLOCKFALL_TICK_RATE", "fast")

		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env:")
	})

	t.Run("out of range", func(t *testing.T) {
		t.Setenv("BLOCKFALL_TICK_RATE", "0")
		t.Setenv("BLOCKFALL_PREVIEW", "8")

		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tick rate")
		assert.Contains(t, err.Error(), "preview")
	})
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("BLOCKFALL_PREVIEW", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	fs := flag.NewFlagSet("blockfall", flag.ContinueOnError)
	cfg.Flags(fs)
	require.NoError(t, fs.Parse([]string{"-seed", "7", "-lock", "1s"}))

	assert.Equal(t, 5, cfg.Preview, "unset flags keep the env value")
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, time.Second, cfg.LockDelay)
	assert.NoError(t, cfg.Validate())
}
