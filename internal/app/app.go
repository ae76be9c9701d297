// Package app provides application initialization and lifecycle management.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/itmo-abit/planbot/internal/bot"
	"github.com/itmo-abit/planbot/internal/buildinfo"
	"github.com/itmo-abit/planbot/internal/config"
	"github.com/itmo-abit/planbot/internal/curriculum"
	"github.com/itmo-abit/planbot/internal/logger"
	"github.com/itmo-abit/planbot/internal/metrics"
	"github.com/itmo-abit/planbot/internal/ratelimit"
	"github.com/itmo-abit/planbot/internal/recommend"
	"github.com/itmo-abit/planbot/internal/sentry"
	"github.com/itmo-abit/planbot/internal/storage"
	"github.com/itmo-abit/planbot/internal/telegram"
)

// Application wires the bot together and manages its lifecycle.
type Application struct {
	cfg      *config.Config
	logger   *logger.Logger
	db       *storage.DB
	store    *curriculum.Store
	sessions bot.SessionStore
	limiter  *ratelimit.PerChat
	poller   *telegram.Bot
	metrics  *metrics.Metrics
	registry *prometheus.Registry
	server   *http.Server
}

// Initialize creates the application with all dependencies. The curriculum
// store is loaded eagerly; a missing or malformed plan file fails here
// rather than on the first question.
func Initialize(ctx context.Context, cfg *config.Config) (*Application, error) {
	log := logger.NewWithOptions(cfg.LogLevel, os.Stdout, logger.Options{
		BetterStackToken:    cfg.BetterStackToken,
		BetterStackEndpoint: cfg.BetterStackEndpoint,
	})
	log = log.WithField("service", "planbot")
	if host, err := os.Hostname(); err == nil && host != "" {
		log = log.WithField("instance_id", host)
	}

	// Default logger so package-level slog.*Context() calls go through the
	// ContextHandler too.
	slog.SetDefault(log.Logger)

	log.Info("Initializing application...")
	if cfg.BetterStackToken != "" {
		log.WithField("endpoint", cfg.BetterStackEndpoint).Info("Better Stack logging enabled")
	}

	if err := sentry.Initialize(cfg.SentryDSN, cfg.SentryEnvironment); err != nil {
		return nil, fmt.Errorf("sentry: %w", err)
	}

	store, err := curriculum.LoadDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("curriculum: %w", err)
	}
	for _, program := range store.ListPrograms() {
		log.WithField("program", string(program.ID)).WithField("title", program.Title).Info("Plan loaded")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)
	m := metrics.New(registry)

	app := &Application{
		cfg:      cfg,
		logger:   log,
		store:    store,
		metrics:  m,
		registry: registry,
	}

	switch cfg.SessionBackend {
	case config.SessionBackendSQLite:
		db, err := storage.New(cfg.SQLitePath())
		if err != nil {
			return nil, fmt.Errorf("database: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, config.ReadinessCheckTimeout)
		err = db.Ping(pingCtx)
		cancel()
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("database ping: %w", err)
		}
		log.WithField("path", cfg.SQLitePath()).Info("Session database connected")
		app.db = db
		app.sessions = storage.NewSessionStore(db, m)
	default:
		app.sessions = bot.NewMemoryStore()
	}

	app.limiter = ratelimit.NewPerChat(ratelimit.DefaultChatBurst, ratelimit.DefaultChatRefill)

	dispatcher := bot.NewDispatcher(store, recommend.NewEngine(store), log, m)
	app.poller, err = telegram.New(cfg.TelegramToken, dispatcher, app.sessions, app.limiter, log, m)
	if err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(securityHeadersMiddleware())
	router.Use(loggingMiddleware(log))
	if sentry.IsEnabled() {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	router.GET("/", app.redirectToRepo)
	router.GET("/healthz", app.livenessCheck)
	router.HEAD("/healthz", app.livenessCheck)
	router.GET("/readyz", app.readinessCheck)
	router.HEAD("/readyz", app.readinessCheck)
	router.GET("/metrics",
		metricsAuthMiddleware(cfg.MetricsUsername, cfg.MetricsPassword),
		gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	app.server = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: config.HTTPReadTimeout,
		ReadTimeout:       config.HTTPReadTimeout,
		WriteTimeout:      config.HTTPWriteTimeout,
		IdleTimeout:       config.HTTPIdleTimeout,
	}

	log.Info("Initialization complete")
	return app, nil
}

func (a *Application) redirectToRepo(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, "https://github.com/itmo-abit/planbot")
}

func (a *Application) livenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "alive",
		"version": buildinfo.Version,
	})
}

func (a *Application) readinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), config.ReadinessCheckTimeout)
	defer cancel()

	if a.db != nil {
		if err := a.db.Ping(ctx); err != nil {
			a.logger.WithError(err).Warn("Readiness check failed: database unavailable")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"reason": "database unavailable",
			})
			return
		}
	}

	programs := make([]string, 0, 2)
	for _, p := range a.store.ListPrograms() {
		programs = append(programs, string(p.ID))
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"programs": programs,
	})
}

// Run starts the HTTP server and the Telegram poller, then blocks until
// SIGINT/SIGTERM or a fatal error from either.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.WithField("port", a.cfg.Port).Info("Starting HTTP server")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		a.logger.Info("Starting Telegram poller")
		if err := a.poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("telegram poller: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		a.logger.Info("Stopping HTTP server...")
		return a.server.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	a.close()
	return err
}

// close releases resources after both loops have stopped.
func (a *Application) close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.WithError(err).Error("Database close error")
		}
	}

	if sentry.IsEnabled() {
		sentry.Flush(a.cfg.ShutdownTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.logger.Shutdown(shutdownCtx); err != nil {
		a.logger.WithError(err).Warn("Logger shutdown timed out")
	}

	a.logger.Info("Shutdown complete")
}
