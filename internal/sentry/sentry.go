// Package sentry wraps Sentry SDK initialization and capture for the bot.
package sentry

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/itmo-abit/planbot/internal/buildinfo"
)

// Initialize sets up the Sentry SDK. An empty DSN disables Sentry and
// returns nil; every capture helper stays safe to call either way.
func Initialize(dsn, environment string) error {
	if dsn == "" {
		return nil
	}
	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		Release:          buildinfo.Version,
		SampleRate:       1.0,
		AttachStacktrace: true,
	})
}

// IsEnabled reports whether Sentry is initialized and active.
func IsEnabled() bool {
	return sentry.CurrentHub().Client() != nil
}

// Flush waits for buffered events to be sent, up to timeout.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

// CaptureException sends an error to Sentry.
func CaptureException(err error) {
	sentry.CaptureException(err)
}

// CaptureExceptionWithContext sends an error through the hub bound to ctx,
// falling back to the current hub.
func CaptureExceptionWithContext(ctx context.Context, err error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.CaptureException(err)
}
