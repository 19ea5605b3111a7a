package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// simpleHandler is a custom slog handler that writes messages without timestamps or level prefixes
type simpleHandler struct {
	writer    io.Writer
	debugMode bool
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	// Debug messages only enabled in debug mode
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// LogFile configures the rotating log file
type LogFile struct {
	Path       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// Options configures a Splog
type Options struct {
	// Writer receives console output; os.Stdout when nil
	Writer io.Writer
	// Debug enables debug messages on the console. The DEBUG environment
	// variable enables them as well.
	Debug bool
	// File adds a rotating log file when its Path is set
	File LogFile
}

// Splog provides structured logging and output
type Splog struct {
	logger    *slog.Logger
	writer    io.Writer
	logWriter io.WriteCloser
	debug     bool
}

// NewSplog creates a new splog instance with console-only logging on stdout
func NewSplog() *Splog {
	splog, _ := NewSplogWithOptions(Options{})
	return splog
}

// NewSplogWithOptions creates a new splog instance with optional file logging
func NewSplogWithOptions(opts Options) (*Splog, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}
	debugMode := opts.Debug || os.Getenv("DEBUG") != ""
	splog := &Splog{
		writer: writer,
		debug:  debugMode,
	}

	handlers := []slog.Handler{&simpleHandler{writer: writer, debugMode: debugMode}}

	if opts.File.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File.Path), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		logger := newLumberjackLogger(opts.File)
		splog.logWriter = logger

		fileHandler := slog.NewTextHandler(logger, &slog.HandlerOptions{
			Level: slog.LevelDebug, // Always log everything to file
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		})
		handlers = append(handlers, fileHandler)
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog, nil
}

// newLumberjackLogger applies defaults to unset rotation settings
func newLumberjackLogger(file LogFile) *lumberjack.Logger {
	logger := &lumberjack.Logger{
		Filename:   file.Path,
		MaxSize:    1,  // 1MB default
		MaxBackups: 2,  // Keep 2 old files
		MaxAge:     30, // Keep for 30 days
		Compress:   false,
	}
	if file.MaxSize > 0 {
		logger.MaxSize = file.MaxSize
	}
	if file.MaxBackups > 0 {
		logger.MaxBackups = file.MaxBackups
	}
	if file.MaxAge > 0 {
		logger.MaxAge = file.MaxAge
	}
	return logger
}

// Writer returns the console writer
func (s *Splog) Writer() io.Writer {
	return s.writer
}

// DebugEnabled reports whether debug messages reach the console
func (s *Splog) DebugEnabled() bool {
	return s.debug
}

func (s *Splog) logMessage(level slog.Level, msg string) {
	s.logger.Log(context.Background(), level, msg)
}

func format(prefix, f string, args []interface{}) string {
	if len(args) == 0 {
		return prefix + f
	}
	return fmt.Sprintf(prefix+f, args...)
}

// Info writes an info message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Info(f string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, format("", f, args))
}

// Page writes content as is, bypassing the log file
func (s *Splog) Page(content string) {
	_, _ = fmt.Fprint(s.writer, content)
}

// Newline writes a newline
func (s *Splog) Newline() {
	_, _ = fmt.Fprintln(s.writer)
}

// Warn writes a warning message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Warn(f string, args ...interface{}) {
	s.logMessage(slog.LevelWarn, format("⚠️  ", f, args))
}

// Error writes an error message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Error(f string, args ...interface{}) {
	s.logMessage(slog.LevelError, format("❌ ", f, args))
}

// Debug writes a debug message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Debug(f string, args ...interface{}) {
	s.logMessage(slog.LevelDebug, format("", f, args))
}

// Tip writes a tip message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Tip(f string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, format("💡 ", f, args))
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
