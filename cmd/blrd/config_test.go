package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/blrd/internal/puzzle"
	"github.com/KirkDiggler/blrd/internal/repositories/score"
	"github.com/KirkDiggler/blrd/internal/roundclock"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	newCmd(cfg)

	assert.Equal(t, storeSQLite, cfg.Store)
	assert.Equal(t, roundclock.DefaultDuration, cfg.Duration)
	assert.Equal(t, time.Second, cfg.Tick)
	assert.Equal(t, score.DefaultKeyPrefix, cfg.KeyPrefix)
	assert.Equal(t, puzzle.DefaultSalt, cfg.Salt)
	assert.Equal(t, "blrd.db", filepath.Base(cfg.DBPath))
	assert.False(t, cfg.Sound)
	require.NoError(t, cfg.validate())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("BLRD_DURATION", "30")
	t.Setenv("BLRD_STORE", "redis")
	t.Setenv("BLRD_ANSWER", "bees")
	t.Setenv("BLRD_SOUND", "true")

	cfg := &Config{}
	newCmd(cfg)

	assert.Equal(t, 30, cfg.Duration)
	assert.Equal(t, storeRedis, cfg.Store)
	assert.Equal(t, "bees", cfg.Answer)
	assert.True(t, cfg.Sound)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("BLRD_DURATION", "30")

	cfg := &Config{}
	cmd := newCmd(cfg)
	require.NoError(t, cmd.PersistentFlags().Parse([]string{"--duration", "45"}))

	assert.Equal(t, 45, cfg.Duration)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		newCmd(cfg)
		return cfg
	}

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown store", func(c *Config) { c.Store = "postgres" }},
		{"zero duration", func(c *Config) { c.Duration = 0 }},
		{"tiny tick", func(c *Config) { c.Tick = time.Millisecond }},
		{"answer with space", func(c *Config) { c.Answer = "TWO WORDS" }},
		{"negative fallback", func(c *Config) { c.FallbackScore = -1 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"sqlite without path", func(c *Config) { c.DBPath = "" }},
		{"redis without address", func(c *Config) { c.Store = storeRedis; c.RedisAddr = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			assert.Error(t, cfg.validate())
		})
	}
}

func TestOpenStore(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		cfg := &Config{Store: storeSQLite, DBPath: filepath.Join(t.TempDir(), "nested", "blrd.db")}
		repo, closeStore, err := openStore(cfg, nil)
		require.NoError(t, err)
		defer closeStore()
		assert.NotNil(t, repo)
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := &Config{Store: storeRedis, RedisAddr: mr.Addr()}
		repo, closeStore, err := openStore(cfg, nil)
		require.NoError(t, err)
		defer closeStore()
		assert.NotNil(t, repo)
	})

	t.Run("redis unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		_, _, err := openStore(&Config{Store: storeRedis, RedisAddr: addr}, nil)
		assert.Error(t, err)
	})
}
