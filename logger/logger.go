// Package logger provides the leveled logger shared by the registry, the enum
// prober and the generator CLI.
//
// The default implementation writes through github.com/zbh255/bilog. It can be
// silenced globally with SetOpen(false) or replaced with SetDefault.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/zbh255/bilog"
)

// Logger is the printf-style logging surface used across typekit.
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}

var (
	current atomic.Value // holds *holder
	open    atomic.Bool
)

// holder keeps atomic.Value storing a single concrete type.
type holder struct {
	l Logger
}

func init() {
	open.Store(true)
	current.Store(&holder{l: New(os.Stderr)})
}

// New returns a Logger backed by bilog that writes to w.
func New(w io.Writer) Logger {
	return &bilogLogger{
		logging: bilog.NewLogger(w, bilog.PANIC, bilog.WithDefault()),
	}
}

// Default returns the process-wide logger.
func Default() Logger {
	return current.Load().(*holder).l
}

// SetDefault replaces the process-wide logger. A nil logger installs NilLogger.
func SetDefault(l Logger) {
	if l == nil {
		l = NilLogger{}
	}
	current.Store(&holder{l: l})
}

// SetOpen turns the bilog-backed loggers on or off.
func SetOpen(ok bool) {
	open.Store(ok)
}

// IsOpen reports whether the bilog-backed loggers currently emit records.
func IsOpen() bool {
	return open.Load()
}

type bilogLogger struct {
	logging bilog.Logger
}

func (b *bilogLogger) Debug(format string, v ...any) {
	if !IsOpen() {
		return
	}
	b.logging.Debug(fmt.Sprintf(format, v...))
}

func (b *bilogLogger) Info(format string, v ...any) {
	if !IsOpen() {
		return
	}
	b.logging.Info(fmt.Sprintf(format, v...))
}

// Warn is written at bilog's trace level, bilog has no warning level.
func (b *bilogLogger) Warn(format string, v ...any) {
	if !IsOpen() {
		return
	}
	b.logging.Trace(fmt.Sprintf(format, v...))
}

func (b *bilogLogger) Error(format string, v ...any) {
	if !IsOpen() {
		return
	}
	b.logging.ErrorFromString(fmt.Sprintf(format, v...))
}

// NilLogger discards everything.
type NilLogger struct{}

func (NilLogger) Debug(string, ...any) {}

func (NilLogger) Info(string, ...any) {}

func (NilLogger) Warn(string, ...any) {}

func (NilLogger) Error(string, ...any) {}
