package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Port    int      `env:"CONSTRUCTCO_TEST_PORT" envDefault:"123"`
	Origins []string `env:"CONSTRUCTCO_TEST_ORIGINS" envSeparator:","`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 123, cfg.Port)
	assert.Empty(t, cfg.Origins)
}

func TestParseEnvValues(t *testing.T) {
	t.Setenv("CONSTRUCTCO_TEST_PORT", "8181")
	t.Setenv("CONSTRUCTCO_TEST_ORIGINS", "a,b")

	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 8181, cfg.Port)
	assert.Equal(t, []string{"a", "b"}, cfg.Origins)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("CONSTRUCTCO_TEST_PORT", "not-an-int")

	var cfg envTestConfig
	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
