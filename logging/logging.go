// Package logging builds the logr.Logger handed to library packages.
//
// Libraries in this module only depend on the logr facade; this package is
// the single place that chooses zap as the sink.
package logging

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported levels. "debug" enables logr V(1) messages.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelError = "error"
)

// ErrBadLevel indicates an unsupported Config.Level.
var ErrBadLevel = errors.New("logging: unsupported level")

// Config selects the logger level and encoding.
type Config struct {
	Level       string `yaml:"level" mapstructure:"level"`
	Development bool   `yaml:"development" mapstructure:"development"`
}

// DefaultConfig returns production JSON logging at info level.
func DefaultConfig() Config {
	return Config{Level: LevelInfo}
}

// Validate reports ErrBadLevel for unknown levels.
func (c Config) Validate() error {
	_, err := zapLevel(c.Level)
	return err
}

// New builds a zap-backed logr.Logger for cfg.
func New(cfg Config) (logr.Logger, error) {
	lvl, err := zapLevel(cfg.Level)
	if err != nil {
		return logr.Discard(), err
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	zl, err := zc.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("logging: build zap logger: %w", err)
	}

	return zapr.NewLogger(zl), nil
}

// zapLevel maps a level name to its zap level. logr V(n) maps to zap level -n.
func zapLevel(level string) (zapcore.Level, error) {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel, nil
	case LevelInfo, "":
		return zapcore.InfoLevel, nil
	case LevelError:
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrBadLevel, level)
	}
}
