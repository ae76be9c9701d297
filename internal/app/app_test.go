package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itmo-abit/planbot/internal/config"
	"github.com/itmo-abit/planbot/internal/curriculum"
	"github.com/itmo-abit/planbot/internal/logger"
)

const (
	testAIRaw      = `{"curriculum":{"program_name":"Искусственный интеллект","blocks":[]}}`
	testProductRaw = `{"curriculum_name":"Управление ИИ-продуктами","blocks":[]}`
)

func newTestApp(t *testing.T) *Application {
	t.Helper()
	store, err := curriculum.NewStore([]byte(testAIRaw), []byte(testProductRaw))
	require.NoError(t, err)
	return &Application{
		store:  store,
		logger: logger.NewWithWriter("error", io.Discard),
	}
}

func TestLivenessCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	app := newTestApp(t)
	router.GET("/healthz", app.livenessCheck)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"alive"`)
}

func TestReadinessCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	app := newTestApp(t)
	router.GET("/readyz", app.readinessCheck)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ready"`)
	assert.Contains(t, w.Body.String(), `"ai"`)
	assert.Contains(t, w.Body.String(), `"ai_product"`)
}

func TestInitializeCancelledContextFailsPing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, curriculum.AIPlanFile), []byte(testAIRaw), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, curriculum.AIProductPlanFile), []byte(testProductRaw), 0o644))

	cfg := &config.Config{
		LogLevel:       "error",
		DataDir:        dir,
		SessionBackend: config.SessionBackendSQLite,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Initialize(ctx, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database ping")
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(securityHeadersMiddleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
