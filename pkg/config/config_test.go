package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiflowstudio/landing/pkg/config"
)

type parseConfig struct {
	Name  string `env:"CFG_TEST_NAME" envDefault:"default"`
	Count int    `env:"CFG_TEST_COUNT" envDefault:"3"`
}

type cachedConfig struct {
	Value string `env:"CFG_TEST_CACHED"`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED,required"`
}

func TestParse(t *testing.T) {
	t.Setenv("CFG_TEST_NAME", "landing")

	var cfg parseConfig
	require.NoError(t, config.Parse(&cfg))
	assert.Equal(t, "landing", cfg.Name)
	assert.Equal(t, 3, cfg.Count)
}

func TestParse_Required(t *testing.T) {
	var cfg requiredConfig
	err := config.Parse(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestParse_NilPointer(t *testing.T) {
	assert.ErrorIs(t, config.Parse[parseConfig](nil), config.ErrNilPointer)
	assert.ErrorIs(t, config.Load[parseConfig](nil), config.ErrNilPointer)
}

func TestLoad_Caches(t *testing.T) {
	t.Setenv("CFG_TEST_CACHED", "first")

	var a cachedConfig
	require.NoError(t, config.Load(&a))
	assert.Equal(t, "first", a.Value)

	t.Setenv("CFG_TEST_CACHED", "second")

	var b cachedConfig
	require.NoError(t, config.Load(&b))
	assert.Equal(t, "first", b.Value)
}

func TestMustLoad_Panics(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
