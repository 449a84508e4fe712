// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger with
// constructors for the server and the CLI client, plus helpers to fetch
// request-scoped loggers from a context.
//
// The Logger type embeds zerolog.Logger so all zerolog methods (Debug, Info,
// Warn, Error, Fatal, ...) are available directly on *Logger.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func init() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger constructs the JSON logger used by the server.
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name. Output goes to os.Stdout.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	return newLogger(os.Stdout, role)
}

// NewConsoleLogger constructs a human-readable logger writing to os.Stderr.
// It is used by the CLI client so that stdout stays reserved for results.
func NewConsoleLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return newLogger(out, role)
}

func newLogger(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// WithLevel returns a child logger that only emits entries at level or above.
// An empty level keeps the receiver's level.
func (l *Logger) WithLevel(level string) (*Logger, error) {
	if level == "" {
		return l.GetChildLogger(), nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return &Logger{l.Level(lvl)}, nil
}

// Nop returns a *Logger that discards all output. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the
// receiver; the child can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx via zerolog's WithContext.
//
// If none is attached, zerolog's default context logger is returned, so the
// result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
