package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/dotris/config"
	"github.com/plus3/dotris/highscore"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("DOTRIS_TEST_STR", "hello")
	t.Setenv("DOTRIS_TEST_INT", "42")
	t.Setenv("DOTRIS_TEST_BAD_INT", "forty")
	t.Setenv("DOTRIS_TEST_BOOL", "false")
	t.Setenv("DOTRIS_TEST_BAD_BOOL", "nope")

	assert.Equal(t, "hello", config.GetEnv("DOTRIS_TEST_STR", "x"))
	assert.Equal(t, "x", config.GetEnv("DOTRIS_TEST_MISSING", "x"))
	assert.Equal(t, 42, config.GetEnvAsInt("DOTRIS_TEST_INT", 1))
	assert.Equal(t, 1, config.GetEnvAsInt("DOTRIS_TEST_BAD_INT", 1))
	assert.Equal(t, 7, config.GetEnvAsInt("DOTRIS_TEST_MISSING", 7))
	assert.False(t, config.GetEnvAsBool("DOTRIS_TEST_BOOL", true))
	assert.True(t, config.GetEnvAsBool("DOTRIS_TEST_BAD_BOOL", true))
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"DOTRIS_TPS", "DOTRIS_MAX_PLAYERS", "DOTRIS_HIGHSCORE_BACKEND", "DOTRIS_HIGHSCORE_PATH", "DOTRIS_SOUND"} {
			t.Setenv(key, "")
		}
		cfg := config.Load()
		assert.Equal(t, 60, cfg.TicksPerSecond)
		assert.Equal(t, 2, cfg.MaxPlayers)
		assert.Equal(t, "file", cfg.HighscoreBackend)
		assert.Equal(t, highscore.DefaultPath, cfg.HighscorePath)
		assert.True(t, cfg.Sound)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DOTRIS_TPS", "30")
		t.Setenv("DOTRIS_HIGHSCORE_BACKEND", "Redis")
		t.Setenv("DOTRIS_REDIS_KEY", "cab1")
		cfg := config.Load()
		assert.Equal(t, time.Second/30, cfg.TickInterval())

		opts := cfg.Highscore()
		assert.Equal(t, "redis", opts.Backend)
		assert.Equal(t, "cab1", opts.RedisKey)
	})

	t.Run("tick interval guards zero", func(t *testing.T) {
		cfg := &config.Config{}
		assert.Equal(t, time.Second/60, cfg.TickInterval())
	})
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DOTRIS_DOTENV_PROBE=loaded\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)
	defer os.Unsetenv("DOTRIS_DOTENV_PROBE")

	config.LoadDotEnv()
	assert.Equal(t, "loaded", os.Getenv("DOTRIS_DOTENV_PROBE"))
}
