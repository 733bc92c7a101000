// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	pathIndent = 4  // spaces to indent path entries
	pathWidth  = 50 // Base width for the path column
)

// 🎯 PathEntry is one collected path
type PathEntry struct {
	Path   string // Path as returned by the traversal
	Hooked bool   // Whether a hook rewrote the path
}

// 📦 CollectOperation describes a traversal for logging
type CollectOperation struct {
	Root   string // Root directory
	Depth  string // Depth limit, "unbounded" when unset
	Target string // Target pattern, "*" when unset
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	mu        sync.Mutex
	currentOp *CollectOperation
	entries   []PathEntry
}

// 🏭 New creates a new logger. Structured events go to zlog, human output to console.
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatPathEntry formats a collected path for display
func (l *Logger) formatPathEntry(e PathEntry) string {
	symbol := '•'
	symbolColor := color.FgCyan
	status := ""
	if e.Hooked {
		symbol = '⟳'
		symbolColor = color.FgBlue
		status = color.New(color.Faint).Sprint("hooked")
	}

	return fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", pathIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", pathWidth, e.Path),
		status)
}

// 📝 LogPath logs a collected path
func (l *Logger) LogPath(ctx context.Context, e PathEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, e)

	fmt.Fprintln(l.console, l.formatPathEntry(e))

	l.zlog.Debug().
		Str("path", e.Path).
		Bool("hooked", e.Hooked).
		Msg("collected path")
}

// 📝 StartCollect starts a new traversal
func (l *Logger) StartCollect(ctx context.Context, op CollectOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.entries = nil

	fmt.Fprintf(l.console, "[collecting %s]\n",
		color.New(color.FgCyan).Sprint(op.Root))

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Target),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint("depth "+op.Depth))

	l.zlog.Info().
		Str("root", op.Root).
		Str("depth", op.Depth).
		Str("target", op.Target).
		Msg("starting traversal")
}

// 📝 EndCollect ends the current traversal and returns the number of logged paths
func (l *Logger) EndCollect(ctx context.Context) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return 0
	}

	count := len(l.entries)
	l.zlog.Info().
		Str("root", l.currentOp.Root).
		Int("paths", count).
		Msg("traversal complete")

	l.currentOp = nil
	l.entries = nil
	return count
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("collectfiles")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message, such as the final path count
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message, such as a directory replaced by a recovery
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
