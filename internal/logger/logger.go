// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// diary.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// The interactive client renders into the terminal alt-screen, so its logger
// writes JSON lines into a file instead of stdout.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label writing JSON to
// os.Stdout.
//
// The logger is configured with:
//   - global log level set to Debug;
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field with the fully-qualified function name.
func NewLogger(role string) *Logger {
	return newLogger(role, os.Stdout, zerolog.DebugLevel)
}

// NewClientLogger constructs a *Logger that appends JSON lines to the file at
// logPath, creating parent directories when needed. level is parsed with
// zerolog.ParseLevel; an empty or unknown level falls back to Debug.
//
// When the file cannot be opened the logger silently discards output: the
// diary must stay usable even on a read-only working directory.
func NewClientLogger(role, logPath, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.DebugLevel
	}

	var out io.Writer = io.Discard
	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "." {
			_ = os.MkdirAll(dir, 0o755)
		}
		logFile, openErr := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if openErr == nil {
			out = logFile
		}
	}

	return newLogger(role, out, lvl)
}

func newLogger(role string, out io.Writer, level zerolog.Level) *Logger {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithSession returns a child logger tagged with the unlock session id.
func (l *Logger) WithSession(sessionID string) *Logger {
	return &Logger{l.With().Str("session_id", sessionID).Logger()}
}

// WithContext attaches the logger to ctx so that [FromContext] can find it.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default context
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
