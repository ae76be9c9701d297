package logger

import (
	"context"
	"log/slog"

	"github.com/itmo-abit/planbot/internal/ctxutil"
)

// ContextHandler is a slog.Handler decorator that extracts tracing values
// (chat ID, update ID, request ID) from the context and adds them as
// attributes to log records, so call sites never pass them by hand.
type ContextHandler struct {
	handler slog.Handler
}

// NewContextHandler creates a new ContextHandler that wraps the provided handler.
func NewContextHandler(handler slog.Handler) *ContextHandler {
	return &ContextHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// This delegates to the wrapped handler.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle enriches the record with context values before delegating to the
// wrapped handler. Context values extracted:
//   - chat_id: Telegram chat the message came from
//   - update_id: Telegram update being processed
//   - request_id: per-update ID generated for log correlation
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if chatID, ok := ctxutil.GetChatID(ctx); ok {
		r.AddAttrs(slog.Int64("chat_id", chatID))
	}
	if updateID, ok := ctxutil.GetUpdateID(ctx); ok {
		r.AddAttrs(slog.Int("update_id", updateID))
	}
	if requestID, ok := ctxutil.GetRequestID(ctx); ok {
		r.AddAttrs(slog.String("request_id", requestID))
	}
	return h.handler.Handle(ctx, r)
}

// WithAttrs returns a new ContextHandler whose attributes consist of
// both the receiver's attributes and the arguments.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs)}
}

// WithGroup returns a new ContextHandler with the given group name prepended
// to the current group name.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name)}
}
