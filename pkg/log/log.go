// Package log builds the zap logger weft programs use. While a program is
// running the renderer owns the terminal, so the logger only ever writes to
// a rotating file; with no file configured, logging is a no-op.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls the file logger.
type Config struct {
	Level      string // debug, info, warn, error
	OutputPath string // log file path; empty disables logging
	MaxSize    int    // max size per file in MB
	MaxBackups int    // rotated files to keep
	MaxAge     int    // days to keep
}

// DefaultConfig returns conservative rotation settings with logging
// disabled until a path is supplied.
func DefaultConfig() Config {
	return Config{
		Level:      "warn",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     14,
	}
}

// New creates a file-backed zap logger. An empty OutputPath returns a
// no-op logger, which callers can use unconditionally.
func New(cfg Config) (*zap.Logger, error) {
	if cfg.OutputPath == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.OutputPath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
	})

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		writer,
		level,
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}
