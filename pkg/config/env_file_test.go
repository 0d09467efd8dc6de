package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/talekit/pkg/config"
)

type envFileConfig struct {
	Seed       int64    `env:"THEMATIC_TEST_SEED"`
	Pack       string   `env:"THEMATIC_TEST_PACK"`
	Categories []string `env:"THEMATIC_TEST_CATEGORIES" envSeparator:","`
	Priority   string   `env:"THEMATIC_TEST_PRIORITY"`
}

func unsetEnvFileVars() {
	for _, k := range []string{
		"THEMATIC_TEST_SEED",
		"THEMATIC_TEST_PACK",
		"THEMATIC_TEST_CATEGORIES",
		"THEMATIC_TEST_PRIORITY",
	} {
		os.Unsetenv(k)
	}
}

func TestLoadEnv_SingleFile(t *testing.T) {
	unsetEnvFileVars()
	t.Cleanup(unsetEnvFileVars)
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.base"))

	var cfg envFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, "packs/fantasy.yaml", cfg.Pack)
	assert.Equal(t, []string{"color", "personality", "scifi_trope"}, cfg.Categories)
	assert.Equal(t, "base", cfg.Priority)
}

func TestLoadEnv_LaterFilesWin(t *testing.T) {
	unsetEnvFileVars()
	t.Cleanup(unsetEnvFileVars)
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.base", "testdata/.env.override"))

	var cfg envFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "override", cfg.Priority)
	assert.Equal(t, "packs/fantasy.yaml", cfg.Pack)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/does-not-exist.env")
	require.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestMustLoadEnv(t *testing.T) {
	t.Cleanup(unsetEnvFileVars)

	assert.NotPanics(t, func() { config.MustLoadEnv("testdata/.env.base") })
	assert.Panics(t, func() { config.MustLoadEnv("testdata/does-not-exist.env") })
}
