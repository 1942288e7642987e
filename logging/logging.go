// Package logging builds the zap loggers shared by the CLI and the engine.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Name is the root logger name; engine and CLI loggers are children of it.
const Name = "algovibe"

// NewSugaredLogger creates the CLI logger. Verbose mode is a development
// logger at debug level. Otherwise only warnings and errors are written,
// as console lines on stderr, so they do not tear the frames on stdout.
func NewSugaredLogger(verbose bool) (*zap.SugaredLogger, error) {
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to create development logger: %w", err)
		}
		return l.Named(Name).Sugar(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create production logger: %w", err)
	}
	return l.Named(Name).Sugar(), nil
}

// OrNop returns log, or a no-op logger when log is nil.
func OrNop(log *zap.SugaredLogger) *zap.SugaredLogger {
	if log == nil {
		return zap.NewNop().Sugar()
	}
	return log
}

// ForRun tags log with the identity of one scan run.
func ForRun(log *zap.SugaredLogger, generation uint64, runID string) *zap.SugaredLogger {
	return OrNop(log).With("generation", generation, "run_id", runID)
}
