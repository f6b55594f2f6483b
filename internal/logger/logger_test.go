package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	config "github.com/inference-gateway/deskcast/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	zap "go.uber.org/zap"
	zapcore "go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	cfg := config.DefaultConfig()

	l, err := New(false, cfg)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = New(true, cfg)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	cfg.Logging.Debug = true
	l, err = New(false, cfg)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_FileOutput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Dir = filepath.Join(t.TempDir(), "logs")

	l, err := New(true, cfg)
	require.NoError(t, err)

	l.Info("pointer moved", zap.Int("x", 10))
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(filepath.Join(cfg.Logging.Dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "pointer moved")
	assert.Contains(t, string(data), `"x":10`)
}

func TestCapture(t *testing.T) {
	logs, restore := Capture()
	defer restore()

	Debug("mapped", "x", 1)
	Warn("clamped", "y", 2)

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "mapped", entries[0].Message)
	assert.Equal(t, int64(1), entries[0].ContextMap()["x"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestFromContext(t *testing.T) {
	ctx, logs := TestContext()
	ctx = WithClient(ctx, "abc")

	L(ctx).Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc", logs.All()[0].ContextMap()["client_id"])

	assert.NotNil(t, FromContext(context.Background()))
}
