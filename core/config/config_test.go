package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/whitenoise/core/config"
)

type serveConfig struct {
	Root   string        `env:"TEST_STATIC_ROOT" envDefault:"./public"`
	MaxAge time.Duration `env:"TEST_STATIC_MAX_AGE" envDefault:"60s"`
}

type requiredConfig struct {
	Root string `env:"TEST_STATIC_REQUIRED_ROOT,required"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg serveConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "./public", cfg.Root)
	assert.Equal(t, 60*time.Second, cfg.MaxAge)
}

func TestLoadCachesPerType(t *testing.T) {
	var first serveConfig
	require.NoError(t, config.Load(&first))

	// Changing the environment after the first load must not be observed.
	t.Setenv("TEST_STATIC_ROOT", "/elsewhere")

	var second serveConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoadMissingRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEST_STATIC_REQUIRED_ROOT")
}

func TestMustLoadPanics(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
