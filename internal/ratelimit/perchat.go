package ratelimit

import (
	"sync"
	"time"
)

// Defaults for Telegram flood control: a short burst, then one message per
// second sustained.
const (
	DefaultChatBurst  = 5.0
	DefaultChatRefill = 1.0
)

// idleEviction is how long an unused chat entry survives before the janitor
// drops it.
const idleEviction = 10 * time.Minute

type chatEntry struct {
	limiter  *Limiter
	lastSeen time.Time
}

// PerChat tracks one token bucket per chat. Entries for idle chats are
// evicted in the background.
type PerChat struct {
	mu      sync.Mutex
	chats   map[int64]*chatEntry
	burst   float64
	refill  float64
	stop    chan struct{}
	stopped sync.Once
}

// NewPerChat creates a per-chat limiter and starts its eviction janitor.
// Call Stop when done.
func NewPerChat(burst, refill float64) *PerChat {
	p := &PerChat{
		chats:  make(map[int64]*chatEntry),
		burst:  burst,
		refill: refill,
		stop:   make(chan struct{}),
	}
	go p.janitor()
	return p
}

// Allow reports whether the chat may send another message now.
func (p *PerChat) Allow(chatID int64) bool {
	p.mu.Lock()
	entry, ok := p.chats[chatID]
	if !ok {
		entry = &chatEntry{limiter: New(p.burst, p.refill)}
		p.chats[chatID] = entry
	}
	entry.lastSeen = time.Now()
	p.mu.Unlock()

	return entry.limiter.Allow()
}

// Len returns the number of tracked chats.
func (p *PerChat) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.chats)
}

// Stop terminates the eviction janitor.
func (p *PerChat) Stop() {
	p.stopped.Do(func() { close(p.stop) })
}

func (p *PerChat) janitor() {
	ticker := time.NewTicker(idleEviction / 2)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-idleEviction)
			p.mu.Lock()
			for id, entry := range p.chats {
				if entry.lastSeen.Before(cutoff) {
					delete(p.chats, id)
				}
			}
			p.mu.Unlock()
		}
	}
}
