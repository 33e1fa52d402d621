// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a JSON logger at the given level, panics on an unknown level.
func NewLogger(l string) *Logger {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(l))); err != nil {
		panic(err)
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(lvl)
	c.EncoderConfig.TimeKey = "@timestamp"
	c.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	logger, err := c.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic(err)
	}

	return newLogger(logger)
}

// NewLoggerFromCore wraps an existing core, mostly useful to observe logs in tests.
func NewLoggerFromCore(core zapcore.Core) *Logger {
	return newLogger(zap.New(core))
}

func newLogger(z *zap.Logger) *Logger {
	return &Logger{
		SugaredLogger: z.Sugar(),
		security:      &SecurityLogger{l: z.With(zap.String("type", "security"))},
	}
}
