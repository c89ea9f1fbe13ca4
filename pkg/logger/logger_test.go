package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Astemirdum/book-catalog/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Sink(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "catalog.log")

	log, err := logger.NewLogger(logger.Log{LogLevel: zapcore.InfoLevel, Sink: path}, "test")
	require.NoError(t, err)
	log.Debug("hidden")
	log.Info("visible")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "visible")
	require.Contains(t, string(data), "test")
	require.NotContains(t, string(data), "hidden")
}

func TestNewLogger_SinkOpenError(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing", "dir", "catalog.log")

	log, err := logger.NewLogger(logger.Log{Sink: path}, "test")
	require.Error(t, err)
	require.Contains(t, err.Error(), path)
	require.Nil(t, log)
}
