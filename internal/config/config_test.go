package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "test_token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.TelegramToken != "test_token" {
		t.Errorf("Expected token 'test_token', got '%s'", cfg.TelegramToken)
	}

	// Check defaults
	if cfg.Port != "10000" {
		t.Errorf("Expected default port '10000', got '%s'", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', got '%s'", cfg.LogLevel)
	}
	if cfg.SessionBackend != SessionBackendMemory {
		t.Errorf("Expected default session backend 'memory', got '%s'", cfg.SessionBackend)
	}
	if cfg.ScraperMaxRetries != 10 {
		t.Errorf("Expected default max retries 10, got %d", cfg.ScraperMaxRetries)
	}
	if cfg.ShutdownTimeout != GracefulShutdown {
		t.Errorf("Expected default shutdown timeout %v, got %v", GracefulShutdown, cfg.ShutdownTimeout)
	}
	if cfg.MetricsUsername != "prometheus" {
		t.Errorf("Expected default metrics username 'prometheus', got '%s'", cfg.MetricsUsername)
	}
	for _, id := range []string{"ai", "ai_product"} {
		if cfg.ProgramURLs[id] == "" {
			t.Errorf("Expected program URL for %q", id)
		}
	}
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() without TELEGRAM_TOKEN should fail")
	}
	if !strings.Contains(err.Error(), "TELEGRAM_TOKEN") {
		t.Errorf("Expected error to mention TELEGRAM_TOKEN, got %v", err)
	}
}

func TestLoadScraperWithoutToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")

	cfg, err := LoadScraper()
	if err != nil {
		t.Fatalf("LoadScraper() error = %v", err)
	}
	if cfg.ScraperMaxRetries != 10 {
		t.Errorf("Expected default retries 10, got %d", cfg.ScraperMaxRetries)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "test_token")
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SESSION_BACKEND", "sqlite")
	t.Setenv("DATA_DIR", "/tmp/planbot")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("SCRAPER_MAX_RETRIES", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level 'debug', got '%s'", cfg.LogLevel)
	}
	if cfg.SessionBackend != SessionBackendSQLite {
		t.Errorf("Expected session backend 'sqlite', got '%s'", cfg.SessionBackend)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected shutdown timeout 10s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.ScraperMaxRetries != 3 {
		t.Errorf("Expected max retries 3, got %d", cfg.ScraperMaxRetries)
	}
	if got := cfg.SQLitePath(); got != "/tmp/planbot/sessions.db" {
		t.Errorf("Expected SQLite path '/tmp/planbot/sessions.db', got '%s'", got)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			TelegramToken:     "token",
			Port:              "10000",
			DataDir:           "/data",
			SessionBackend:    SessionBackendMemory,
			ShutdownTimeout:   30 * time.Second,
			ScraperTimeout:    time.Minute,
			ScraperMaxRetries: 10,
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:        "missing telegram token",
			mutate:      func(c *Config) { c.TelegramToken = "" },
			wantErr:     true,
			errContains: "TELEGRAM_TOKEN",
		},
		{
			name:        "missing port",
			mutate:      func(c *Config) { c.Port = "" },
			wantErr:     true,
			errContains: "PORT",
		},
		{
			name:        "missing data dir",
			mutate:      func(c *Config) { c.DataDir = "" },
			wantErr:     true,
			errContains: "DATA_DIR",
		},
		{
			name:        "bad session backend",
			mutate:      func(c *Config) { c.SessionBackend = "redis" },
			wantErr:     true,
			errContains: "SESSION_BACKEND",
		},
		{
			name:        "non-positive scraper timeout",
			mutate:      func(c *Config) { c.ScraperTimeout = 0 },
			wantErr:     true,
			errContains: "SCRAPER_TIMEOUT",
		},
		{
			name:        "negative retries",
			mutate:      func(c *Config) { c.ScraperMaxRetries = -1 },
			wantErr:     true,
			errContains: "SCRAPER_MAX_RETRIES",
		},
		{
			name: "multiple errors joined",
			mutate: func(c *Config) {
				c.TelegramToken = ""
				c.Port = ""
			},
			wantErr:     true,
			errContains: "PORT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Validate() error = %v, want error containing %q", err, tt.errContains)
			}
		})
	}
}
