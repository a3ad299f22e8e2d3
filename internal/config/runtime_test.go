package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRunConfigurationFromEnv(t *testing.T) {
	t.Setenv("PROWL_CONFIG", "/etc/prowl/config.toml")
	t.Setenv("PROWL_LOG_LEVEL", "debug")
	t.Setenv("PROWL_WATCH", "true")

	rc, err := LoadRunConfiguration()
	require.NoError(t, err)
	assert.Equal(t, "/etc/prowl/config.toml", rc.ConfigPath)
	assert.Equal(t, "debug", rc.LogLevel)
	assert.True(t, rc.Watch)
	assert.False(t, rc.Development)
}

func TestLoadRunConfigurationDefaults(t *testing.T) {
	t.Setenv("PROWL_CONFIG", "")

	rc, err := LoadRunConfiguration()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigPath(), rc.ConfigPath)
	assert.Equal(t, "info", rc.LogLevel)
}
