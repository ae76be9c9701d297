// Package ctxutil provides type-safe context value management.
// Uses private key types to prevent collisions.
package ctxutil

import (
	"context"
)

type contextKey string

const (
	chatIDKey    contextKey = "ctxutil.chatID"
	updateIDKey  contextKey = "ctxutil.updateID"
	requestIDKey contextKey = "ctxutil.requestID"
)

// WithChatID adds a Telegram chat ID to the context. The chat ID
// identifies the conversation and keys the session store.
func WithChatID(ctx context.Context, chatID int64) context.Context {
	return context.WithValue(ctx, chatIDKey, chatID)
}

// GetChatID retrieves the chat ID from the context.
// Returns the chat ID and true if found, zero and false otherwise.
func GetChatID(ctx context.Context) (int64, bool) {
	if v := ctx.Value(chatIDKey); v != nil {
		if chatID, ok := v.(int64); ok && chatID != 0 {
			return chatID, true
		}
	}
	return 0, false
}

// WithUpdateID adds a Telegram update ID to the context. Update IDs are
// assigned by Telegram and are unique per bot, which makes them useful
// for correlating logs with the Bot API.
func WithUpdateID(ctx context.Context, updateID int) context.Context {
	return context.WithValue(ctx, updateIDKey, updateID)
}

// GetUpdateID retrieves the update ID from the context.
// Returns the update ID and true if found, zero and false otherwise.
func GetUpdateID(ctx context.Context) (int, bool) {
	if v := ctx.Value(updateIDKey); v != nil {
		if updateID, ok := v.(int); ok && updateID != 0 {
			return updateID, true
		}
	}
	return 0, false
}

// WithRequestID adds a request ID to the context. Request IDs are
// generated per processed update for log correlation.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID retrieves the request ID from the context.
// Returns the request ID and true if found, empty string and false otherwise.
func GetRequestID(ctx context.Context) (string, bool) {
	if v := ctx.Value(requestIDKey); v != nil {
		if requestID, ok := v.(string); ok && requestID != "" {
			return requestID, true
		}
	}
	return "", false
}
