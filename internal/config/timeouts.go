// Package config provides application configuration management.
//
// Timeout constants below are tuned for the two external systems the bot
// talks to: the Telegram Bot API (long polling) and abit.itmo.ru (program
// pages the scraper pulls curricula from).
package config

import "time"

// Telegram timeouts
const (
	// TelegramPollTimeout is the long-poll timeout for getUpdates, in
	// seconds as the Bot API expects. Telegram holds the request open up
	// to this long when no updates are pending.
	TelegramPollTimeout = 30

	// UpdateProcessing is the per-update processing budget: session load,
	// dispatch, session save, reply send. Dispatch itself is in-memory and
	// fast; the budget exists for the network hops around it.
	UpdateProcessing = 15 * time.Second
)

// Scraper timeouts
const (
	// ScraperRequest is the timeout for a single HTTP request to
	// abit.itmo.ru. The admission site slows down noticeably while
	// application waves are open.
	ScraperRequest = 60 * time.Second

	// ScraperRetryInitial is the initial delay before retrying a failed
	// request. Uses exponential backoff: 4s -> 8s -> 16s -> 32s -> 64s
	ScraperRetryInitial = 4 * time.Second
)

// Database timeouts
const (
	// DatabaseBusyTimeout is SQLite busy_timeout pragma value.
	DatabaseBusyTimeout = 30 * time.Second

	// DatabaseConnMaxLifetime is the maximum lifetime of database connections.
	// Prevents stale connections and allows connection pool refresh.
	DatabaseConnMaxLifetime = time.Hour
)

// HTTP server timeouts
const (
	// HTTPReadTimeout bounds reading a request, header included.
	HTTPReadTimeout = 10 * time.Second

	// HTTPWriteTimeout bounds writing a response.
	HTTPWriteTimeout = 30 * time.Second

	// HTTPIdleTimeout is how long keep-alive connections are held open.
	HTTPIdleTimeout = 120 * time.Second

	// ReadinessCheckTimeout bounds the database ping in /readyz.
	ReadinessCheckTimeout = 5 * time.Second
)

// Graceful shutdown
const (
	// GracefulShutdown is the timeout for graceful server shutdown.
	// Allows in-flight updates to complete before forceful termination.
	GracefulShutdown = 30 * time.Second
)
