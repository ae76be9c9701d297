package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerChatIndependentBuckets(t *testing.T) {
	t.Parallel()

	p := NewPerChat(1, 0)
	defer p.Stop()

	assert.True(t, p.Allow(1))
	assert.False(t, p.Allow(1))

	// A different chat gets its own bucket.
	assert.True(t, p.Allow(2))
}

func TestPerChatTracksChats(t *testing.T) {
	t.Parallel()

	p := NewPerChat(DefaultChatBurst, DefaultChatRefill)
	defer p.Stop()

	p.Allow(1)
	p.Allow(2)
	p.Allow(1)
	assert.Equal(t, 2, p.Len())
}

func TestPerChatStopIdempotent(t *testing.T) {
	t.Parallel()

	p := NewPerChat(1, 1)
	p.Stop()
	p.Stop()
}
