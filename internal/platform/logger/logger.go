// Package logger provides structured logging functionality for the application.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/measure/internal/ciutil"
	"github.com/phrazzld/measure/internal/config"
)

type contextKey string

const (
	loggerKey contextKey = "logger"
	runIDKey  contextKey = "run_id"
)

// Setup initializes the application's logging system from cfg and sets the
// resulting logger as the slog default. A nil out means stderr, which keeps
// command output on stdout clean.
func Setup(out io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	if out == nil {
		out = os.Stderr
	}
	logger, err := New(out, cfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}

// New builds a logger writing to out in cfg.Format. Inside CI that handler is
// wrapped in a CIHandler that adds job metadata to every record.
//
// An unknown level falls back to info after a warning is written to out, so the
// returned error is currently always nil.
func New(out io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	level, ok := ParseLevel(cfg.Level)
	if !ok {
		// Create a temporary logger to output the warning
		tmpLogger := slog.New(slog.NewTextHandler(out, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}
	if ciutil.IsCI() {
		handler = NewCIHandler(handler)
	}

	return slog.New(handler), nil
}

// ParseLevel maps a case-insensitive level name to a slog.Level. Unknown names
// map to slog.LevelInfo and ok is false.
func ParseLevel(name string) (level slog.Level, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// WithRunID stores a fresh run id in ctx and returns it. Loggers obtained
// through FromContext carry it as the run_id attribute.
func WithRunID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, runIDKey, id), id
}

// RunID returns the run id stored in ctx, or "".
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// FromContext returns the logger stored in ctx, or slog.Default(), with the
// run id attached when one is present.
func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok || l == nil {
		l = slog.Default()
	}
	if id := RunID(ctx); id != "" {
		l = l.With(slog.String("run_id", id))
	}
	return l
}
