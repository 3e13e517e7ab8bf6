package logger

import (
	"context"
	"log/slog"
	"sort"

	"github.com/phrazzld/measure/internal/ciutil"
)

// CIHandler is a slog.Handler that adds CI environment metadata to every
// record before passing it to the wrapped handler.
type CIHandler struct {
	handler slog.Handler
	attrs   []slog.Attr
}

// NewCIHandler wraps inner, keeping its output format and level.
func NewCIHandler(inner slog.Handler) *CIHandler {
	return &CIHandler{
		handler: inner,
		attrs:   metadataAttrs(ciutil.Metadata()),
	}
}

// Enabled implements the slog.Handler interface.
func (h *CIHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs implements the slog.Handler interface.
func (h *CIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CIHandler{handler: h.handler.WithAttrs(attrs), attrs: h.attrs}
}

// WithGroup implements the slog.Handler interface.
func (h *CIHandler) WithGroup(name string) slog.Handler {
	return &CIHandler{handler: h.handler.WithGroup(name), attrs: h.attrs}
}

// Handle implements the slog.Handler interface.
func (h *CIHandler) Handle(ctx context.Context, record slog.Record) error {
	enhanced := record.Clone()
	enhanced.AddAttrs(h.attrs...)
	return h.handler.Handle(ctx, enhanced)
}

// metadataAttrs turns md into attributes in a stable order.
func metadataAttrs(md map[string]string) []slog.Attr {
	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.String(k, md[k]))
	}
	return attrs
}
