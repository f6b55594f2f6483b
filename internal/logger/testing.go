package logger

import (
	"context"

	zap "go.uber.org/zap"
	observer "go.uber.org/zap/zaptest/observer"
)

// TestLogger creates a logger that records entries for assertions
func TestLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

// TestContext creates a context carrying a recording logger
func TestContext() (context.Context, *observer.ObservedLogs) {
	l, logs := TestLogger()
	return ContextWithLogger(context.Background(), l), logs
}

// Capture installs a recording logger as the global logger until restore is called
func Capture() (logs *observer.ObservedLogs, restore func()) {
	previous := current().Desugar()
	l, logs := TestLogger()
	Set(l)
	return logs, func() { Set(previous) }
}

// NopContext creates a context with a no-op logger
func NopContext() context.Context {
	return ContextWithLogger(context.Background(), zap.NewNop())
}
