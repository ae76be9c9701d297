package sentry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDisabled(t *testing.T) {
	require.NoError(t, Initialize("", "production"))
}

func TestCaptureSafeWhenDisabled(t *testing.T) {
	CaptureException(assert.AnError)
	assert.True(t, Flush(10*time.Millisecond))
}
