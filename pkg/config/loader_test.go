package config_test

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/talekit/pkg/config"
)

type defaultsConfig struct {
	Format string `env:"THEMATIC_DEFAULTS_FORMAT" envDefault:"text"`
	Seed   int64  `env:"THEMATIC_DEFAULTS_SEED" envDefault:"42"`
	Seeded bool   `env:"THEMATIC_DEFAULTS_SEEDED" envDefault:"true"`
}

type successConfig struct {
	Format string `env:"THEMATIC_SUCCESS_FORMAT" envDefault:"text"`
	Seed   int64  `env:"THEMATIC_SUCCESS_SEED"`
	Seeded bool   `env:"THEMATIC_SUCCESS_SEEDED"`
}

type cachedConfig struct {
	Pack string `env:"THEMATIC_CACHED_PACK"`
}

type reloadConfig struct {
	Pack string `env:"THEMATIC_RELOAD_PACK"`
}

type requiredConfig struct {
	Pack string `env:"THEMATIC_REQUIRED_PACK,required"`
}

type concurrentConfig struct {
	Level string `env:"THEMATIC_CONCURRENT_LEVEL" envDefault:"debug"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("THEMATIC_SUCCESS_FORMAT", "json")
	t.Setenv("THEMATIC_SUCCESS_SEED", "-7")
	t.Setenv("THEMATIC_SUCCESS_SEEDED", "true")

	var cfg successConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, int64(-7), cfg.Seed)
	assert.True(t, cfg.Seeded)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("THEMATIC_DEFAULTS_FORMAT")
	os.Unsetenv("THEMATIC_DEFAULTS_SEED")
	os.Unsetenv("THEMATIC_DEFAULTS_SEEDED")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Seeded)
}

func TestLoad_IsCachedPerType(t *testing.T) {
	t.Setenv("THEMATIC_CACHED_PACK", "first.yaml")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("THEMATIC_CACHED_PACK", "second.yaml")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first.yaml", second.Pack)
}

func TestForceReload(t *testing.T) {
	t.Setenv("THEMATIC_RELOAD_PACK", "first.yaml")

	var cfg reloadConfig
	require.NoError(t, config.Load(&cfg))

	t.Setenv("THEMATIC_RELOAD_PACK", "second.yaml")
	require.NoError(t, config.ForceReload(&cfg))
	assert.Equal(t, "second.yaml", cfg.Pack)
}

func TestLoad_MissingRequiredIsNotCached(t *testing.T) {
	os.Unsetenv("THEMATIC_REQUIRED_PACK")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("THEMATIC_REQUIRED_PACK", "fantasy.yaml")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "fantasy.yaml", cfg.Pack)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *successConfig
	require.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoad_NotAStruct(t *testing.T) {
	var n int
	require.ErrorIs(t, config.Load(&n), config.ErrInvalidConfigType)
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("THEMATIC_REQUIRED_PACK")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
	assert.NotPanics(t, func() {
		var cfg defaultsConfig
		config.MustLoad(&cfg)
	})
}

func TestLoad_Concurrent(t *testing.T) {
	config.ResetCache()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var cfg concurrentConfig
			assert.NoError(t, config.Load(&cfg))
			assert.Equal(t, "debug", cfg.Level)
		}()
	}
	wg.Wait()
}
