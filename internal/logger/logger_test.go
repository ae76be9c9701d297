package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestNewWithWriter_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		debugShown bool
		infoShown  bool
	}{
		{
			name:       "debug level shows everything",
			level:      "debug",
			debugShown: true,
			infoShown:  true,
		},
		{
			name:       "info level hides debug",
			level:      "info",
			debugShown: false,
			infoShown:  true,
		},
		{
			name:       "warn level hides info",
			level:      "warn",
			debugShown: false,
			infoShown:  false,
		},
		{
			name:       "error level hides info",
			level:      "error",
			debugShown: false,
			infoShown:  false,
		},
		{
			name:       "invalid level defaults to info",
			level:      "invalid",
			debugShown: false,
			infoShown:  true,
		},
		{
			name:       "empty level defaults to info",
			level:      "",
			debugShown: false,
			infoShown:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(tt.level, &buf)

			log.Debug("debug message")
			debugShown := buf.Len() > 0
			buf.Reset()
			log.Info("info message")
			infoShown := buf.Len() > 0

			if debugShown != tt.debugShown {
				t.Errorf("debug shown = %v, want %v", debugShown, tt.debugShown)
			}
			if infoShown != tt.infoShown {
				t.Errorf("info shown = %v, want %v", infoShown, tt.infoShown)
			}
		})
	}
}

func parseEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	return entry
}

func TestLogger_WithModule(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithModule("test_module").Info("test message")

	entry := parseEntry(t, &buf)
	if module, ok := entry["module"].(string); !ok || module != "test_module" {
		t.Errorf("WithModule() module = %v, want %q", entry["module"], "test_module")
	}
}

func TestLogger_WithRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithRequestID("req-123").Info("test message")

	entry := parseEntry(t, &buf)
	if requestID, ok := entry["request_id"].(string); !ok || requestID != "req-123" {
		t.Errorf("WithRequestID() request_id = %v, want %q", entry["request_id"], "req-123")
	}
}

func TestLogger_WithError(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	testErr := &testError{msg: "test error message"}
	log.WithError(testErr).Error("operation failed")

	entry := parseEntry(t, &buf)
	if errField, ok := entry["error"].(string); !ok || errField != "test error message" {
		t.Errorf("WithError() error = %v, want %q", entry["error"], "test error message")
	}
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithFields(map[string]any{
		"program": "ai",
		"count":   3,
	}).Info("test message")

	entry := parseEntry(t, &buf)
	if program, ok := entry["program"].(string); !ok || program != "ai" {
		t.Errorf("WithFields() program = %v, want %q", entry["program"], "ai")
	}
	if count, ok := entry["count"].(float64); !ok || count != 3 {
		t.Errorf("WithFields() count = %v, want 3", entry["count"])
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info("test message")

	entry := parseEntry(t, &buf)

	// Check required fields
	requiredFields := []string{"timestamp", "level", "message"}
	for _, field := range requiredFields {
		if _, ok := entry[field]; !ok {
			t.Errorf("JSON log missing required field %q", field)
		}
	}

	if entry["message"] != "test message" {
		t.Errorf("message = %v, want %q", entry["message"], "test message")
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want %q", entry["level"], "info")
	}
}

func TestLogger_WarnLevelSpelledOut(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("debug", &buf)

	log.Warn("careful")

	entry := parseEntry(t, &buf)
	if entry["level"] != "warning" {
		t.Errorf("level = %v, want %q", entry["level"], "warning")
	}
}

func TestLogger_ShutdownWithoutRemote(t *testing.T) {
	log := NewWithWriter("info", bytes.NewBuffer(nil))
	if err := log.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v, want nil", err)
	}
}

// testError is a simple error type for testing
type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}
