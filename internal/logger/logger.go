package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	config "github.com/inference-gateway/deskcast/config"
	zap "go.uber.org/zap"
	zapcore "go.uber.org/zap/zapcore"
)

// LogFileName is the file written inside logging.dir when file logging is enabled
const LogFileName = "deskcast.log"

var (
	mu     sync.RWMutex
	sugar  = zap.NewNop().Sugar()
	closed bool
)

// Init initializes the global logger. Verbose output or logging.debug enables debug level,
// otherwise only warnings and errors are written.
func Init(verbose bool, cfg *config.Config) {
	l, err := New(verbose, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger, falling back to stderr: %v\n", err)
		l = zap.Must(zap.NewProduction())
	}
	Set(l)
}

// New builds a JSON zap logger for the given settings without installing it
func New(verbose bool, cfg *config.Config) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if verbose || (cfg != nil && cfg.Logging.Debug) {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.EncoderConfig.TimeKey = "time"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	if cfg != nil && cfg.Logging.Dir != "" {
		if err := os.MkdirAll(cfg.Logging.Dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		zcfg.OutputPaths = []string{filepath.Join(cfg.Logging.Dir, LogFileName)}
	}

	return zcfg.Build()
}

// Set installs l as the global logger, also replacing zap's globals
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	sugar = l.Sugar()
	closed = false
	zap.ReplaceGlobals(l)
}

// Close flushes buffered log entries
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if closed {
		return
	}
	closed = true
	_ = sugar.Sync()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// Debug logs a debug message with alternating key/value pairs
func Debug(msg string, args ...any) {
	current().Debugw(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	current().Infow(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	current().Warnw(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	current().Errorw(msg, args...)
}
