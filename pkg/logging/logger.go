// Package logging provides a small leveled logger used by cmd/reconcile for
// CLI diagnostics and debug trace output; the core engine does not log. It
// is modeled
// directly on mutagen's pkg/logging: nil-safe (call sites never need to
// guard against a nil *Logger), standard-library log.Logger underneath, and
// colorized via fatih/color.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Logger is the main logger type. A nil *Logger is valid and logs nothing,
// so call sites never need an "if logger != nil" guard.
type Logger struct {
	prefix string
	level  Level
	std    *log.Logger
}

// RootLogger is the root logger from which all other loggers derive. It
// defaults to LevelInfo, writing to a color-capable stderr writer.
var RootLogger = &Logger{
	level: LevelInfo,
	std:   log.New(colorableStderr(), "", log.LstdFlags),
}

// colorableStderr wraps os.Stderr so that ANSI color codes render correctly
// on Windows consoles, and disables color entirely when stderr isn't a
// terminal (e.g. when output is redirected to a file).
func colorableStderr() io.Writer {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}
	return colorable.NewColorableStderr()
}

// NewLogger constructs a root logger at the given level.
func NewLogger(level Level) *Logger {
	return &Logger{level: level, std: log.New(colorableStderr(), "", log.LstdFlags)}
}

// Sublogger creates a new sublogger with the given name appended to the
// prefix chain. If the receiver is nil, the sublogger is nil as well.
func (l *Logger) Sublogger(name string) *Logger {
	if l == nil {
		return nil
	}
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}
	return &Logger{prefix: prefix, level: l.level, std: l.std}
}

// WithLevel returns a copy of the logger at the given level.
func (l *Logger) WithLevel(level Level) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{prefix: l.prefix, level: level, std: l.std}
}

func (l *Logger) enabled(level Level) bool {
	return l != nil && l.level >= level
}

func (l *Logger) output(line string) {
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}
	l.std.Output(3, line)
}

// Info logs basic execution information, such as which merger variant a
// CLI invocation chose.
func (l *Logger) Info(v ...interface{}) {
	if l.enabled(LevelInfo) {
		l.output(fmt.Sprint(v...))
	}
}

// Infof is Info with Printf-style formatting.
func (l *Logger) Infof(format string, v ...interface{}) {
	if l.enabled(LevelInfo) {
		l.output(fmt.Sprintf(format, v...))
	}
}

// Debug logs trace information, such as the decision vector the CLI's
// enumerate command logs after each merger. It is a no-op unless the
// logger's level is LevelDebug.
func (l *Logger) Debug(v ...interface{}) {
	if l.enabled(LevelDebug) {
		l.output(color.CyanString("%s", fmt.Sprint(v...)))
	}
}

// Debugf is Debug with Printf-style formatting.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.enabled(LevelDebug) {
		l.output(color.CyanString("%s", fmt.Sprintf(format, v...)))
	}
}

// Warn logs a non-fatal problem in yellow.
func (l *Logger) Warn(err error) {
	if l.enabled(LevelWarn) {
		l.output(color.YellowString("warning: %v", err))
	}
}

// Error logs a fatal problem in red.
func (l *Logger) Error(err error) {
	if l.enabled(LevelError) {
		l.output(color.RedString("error: %v", err))
	}
}
