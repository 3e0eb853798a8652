// Package logging configures the zap logger shared by the CLI commands.
// Debug traces are best-effort: when verbose mode is off (or the logger
// cannot be built) a no-op logger is returned, so logging never fails a
// command.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns the command logger. With verbose enabled it emits debug-level
// console output on stderr; otherwise it is a no-op.
func New(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
