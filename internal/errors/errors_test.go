package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{
			name:     "ErrNotFound is recognized",
			err:      ErrNotFound,
			target:   ErrNotFound,
			expected: true,
		},
		{
			name:     "Wrapped ErrNotFound is recognized",
			err:      fmt.Errorf("loading plan: %w", ErrNotFound),
			target:   ErrNotFound,
			expected: true,
		},
		{
			name:     "Joined ErrMalformedPlan is recognized",
			err:      errors.Join(ErrMalformedPlan, errors.New("additional context")),
			target:   ErrMalformedPlan,
			expected: true,
		},
		{
			name:     "Different error is not ErrNotFound",
			err:      ErrUnknownProgram,
			target:   ErrNotFound,
			expected: false,
		},
		{
			name:     "ErrInvalidInput is recognized",
			err:      ErrInvalidInput,
			target:   ErrInvalidInput,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := errors.Is(tt.err, tt.target)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("TELEGRAM_TOKEN", "is required")

	if err.Field != "TELEGRAM_TOKEN" {
		t.Errorf("expected field 'TELEGRAM_TOKEN', got '%s'", err.Field)
	}

	if err.Message != "is required" {
		t.Errorf("expected message 'is required', got '%s'", err.Message)
	}

	expected := "validation failed on TELEGRAM_TOKEN: is required"
	if err.Error() != expected {
		t.Errorf("expected error '%s', got '%s'", expected, err.Error())
	}
}

func TestScraperError(t *testing.T) {
	baseErr := errors.New("connection timeout")
	err := NewScraperError("https://abit.itmo.ru/program/master/ai", 500, baseErr)

	if err.URL != "https://abit.itmo.ru/program/master/ai" {
		t.Errorf("expected URL 'https://abit.itmo.ru/program/master/ai', got '%s'", err.URL)
	}

	if err.StatusCode != 500 {
		t.Errorf("expected status code 500, got %d", err.StatusCode)
	}

	if !errors.Is(err, baseErr) {
		t.Error("expected error to wrap base error")
	}

	errMsg := err.Error()
	if errMsg == "" {
		t.Error("expected non-empty error message")
	}

	// Test without status code
	err2 := NewScraperError("https://abit.itmo.ru/program/master/ai", 0, baseErr)
	errMsg2 := err2.Error()
	if errMsg2 == "" {
		t.Error("expected non-empty error message")
	}
}
