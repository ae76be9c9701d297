package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiHandlerFanOut(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer
	h := NewMultiHandler(
		slog.NewJSONHandler(&first, nil),
		slog.NewJSONHandler(&second, nil),
	)

	slog.New(h).Info("hello", "chat_id", 42)

	assert.Contains(t, first.String(), `"msg":"hello"`)
	assert.Contains(t, first.String(), `"chat_id":42`)
	assert.Contains(t, second.String(), `"msg":"hello"`)
}

func TestMultiHandlerSkipsNilHandlers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := NewMultiHandler(nil, slog.NewJSONHandler(&buf, nil), nil)

	require.NoError(t, h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "ok", 0)))
	assert.Contains(t, buf.String(), `"msg":"ok"`)
}

func TestMultiHandlerLevelGating(t *testing.T) {
	t.Parallel()

	var debugSink, errorSink bytes.Buffer
	h := NewMultiHandler(
		slog.NewJSONHandler(&debugSink, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&errorSink, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	log := slog.New(h)
	log.Debug("quiet")
	log.Error("loud")

	assert.Contains(t, debugSink.String(), "quiet")
	assert.Contains(t, debugSink.String(), "loud")
	assert.NotContains(t, errorSink.String(), "quiet")
	assert.Contains(t, errorSink.String(), "loud")
}

func TestMultiHandlerWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := NewMultiHandler(slog.NewJSONHandler(&buf, nil)).
		WithAttrs([]slog.Attr{slog.String("program", "ai")})

	slog.New(h).Info("selected")

	assert.Contains(t, buf.String(), `"program":"ai"`)
}
