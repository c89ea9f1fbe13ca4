package config

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad_Options(t *testing.T) {
	cfg, err := load(WithLogLevel(zapcore.DebugLevel), WithName("demo"), WithStrictUpdate(true))
	require.NoError(t, err)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
	require.Equal(t, "demo", cfg.Catalog.Name)
	require.True(t, cfg.Catalog.StrictUpdate)
}

func TestLoad_EnvOverridesOptions(t *testing.T) {
	t.Setenv("CATALOG_STRICT_UPDATE", "false")
	t.Setenv("CATALOG_NAME", "from-env")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := load(WithStrictUpdate(true), WithName("demo"))
	require.NoError(t, err)
	require.False(t, cfg.Catalog.StrictUpdate)
	require.Equal(t, "from-env", cfg.Catalog.Name)
	require.Equal(t, zapcore.WarnLevel, cfg.Log.LogLevel)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("CATALOG_STRICT_UPDATE", "maybe")

	_, err := load()
	require.Error(t, err)
}
