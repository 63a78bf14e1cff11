package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultForceConsole, cfg.ForceConsole)
	assert.Equal(t, DefaultTimestamps, cfg.Timestamps)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CONLOG_TIMESTAMPS", "true")
	t.Setenv("CONLOG_FORCE_CONSOLE", "1")

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.True(t, cfg.Timestamps)
	assert.True(t, cfg.ForceConsole)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("CONLOG_TIMESTAMPS", "true")

	cfg, err := Load(newFlags(t, "--timestamps=false", "--force-console"))
	require.NoError(t, err)
	assert.False(t, cfg.Timestamps)
	assert.True(t, cfg.ForceConsole)
}

func TestLoad_UnregisteredFlagsIgnored(t *testing.T) {
	flags := pflag.NewFlagSet("other", pflag.ContinueOnError)
	flags.Bool("verbose", false, "")

	cfg, err := Load(flags)
	require.NoError(t, err)
	assert.False(t, cfg.Timestamps)
}

func TestLoad_BadEnvValue(t *testing.T) {
	t.Setenv("CONLOG_TIMESTAMPS", "sometimes")

	_, err := Load(nil)
	assert.Error(t, err)
}
