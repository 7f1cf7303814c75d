// SPDX-License-Identifier: MIT

// Package logging builds the logr.Logger shared by the batch runner and the
// CLI. The backend is zap, bridged through zapr.
//
// Verbosity follows logr: V(0) is always on, DEBUG and TRACE are opt-in.
package logging

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels passed to logger.V.
const (
	DEBUG = 1
	TRACE = 2
)

// ParseLevel maps a level name to a zap level. logr verbosity V(n) is zap
// level −n, so "debug" enables V(DEBUG) and "trace" enables V(TRACE).
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.Level(-DEBUG), nil
	case "trace":
		return zapcore.Level(-TRACE), nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("logging: unknown level %q", name)
	}
}

// New returns a production (JSON) logger at the given level name.
// The returned sync func flushes buffered entries.
func New(level string) (logr.Logger, func() error, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return logr.Discard(), func() error { return nil }, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), func() error { return nil }, fmt.Errorf("logging: build zap: %w", err)
	}

	return zapr.NewLogger(zl), zl.Sync, nil
}

// NewTestLogger returns a development logger with every verbosity enabled.
// Test suites call it once so debug paths are exercised.
func NewTestLogger() logr.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-TRACE))
	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard()
	}

	return zapr.NewLogger(zl)
}
