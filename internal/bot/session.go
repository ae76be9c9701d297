// Package bot turns free-text applicant questions into curriculum queries
// and formatted plain-text replies. Intent matching is an explicit ordered
// rule list evaluated top to bottom, first match wins; the order is part of
// the behavioral contract and covered by tests.
package bot

import (
	"context"
	"strings"
	"sync"

	"github.com/itmo-abit/planbot/internal/curriculum"
	"github.com/itmo-abit/planbot/internal/sliceutil"
)

// MaxTags bounds how many interest tags one session can declare.
const MaxTags = 12

// Session is the per-conversation state: the selected program and the
// declared interest tags. It carries no user identity; mapping chats to
// sessions is the transport layer's job. The caller must not dispatch two
// messages concurrently against the same session.
type Session struct {
	Program curriculum.ProgramID
	Tags    []string
}

// NewSession returns a session with the default program selected.
func NewSession() *Session {
	return &Session{Program: curriculum.ProgramAI}
}

// SetTags replaces the declared tags with up to MaxTags distinct lowercase
// tokens parsed from raw text (split on commas and whitespace, first-seen
// order preserved). Returns the resolved tag list. A raw string that parses
// to nothing leaves the current tags untouched.
func (s *Session) SetTags(raw string) []string {
	fields := strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	tags := sliceutil.Deduplicate(fields, func(t string) string { return t })
	if len(tags) == 0 {
		return nil
	}
	if len(tags) > MaxTags {
		tags = tags[:MaxTags]
	}
	s.Tags = tags
	return tags
}

// SessionStore maps external chat ids to sessions. The in-memory
// implementation below covers single-process runs; internal/storage
// provides a sqlite-backed one for restarts.
type SessionStore interface {
	// GetOrCreate returns the session for the chat, creating a fresh one
	// on first contact.
	GetOrCreate(ctx context.Context, chatID int64) (*Session, error)

	// Save persists the session after dispatch mutated it.
	Save(ctx context.Context, chatID int64, sess *Session) error
}

// MemoryStore is a process-local SessionStore.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]*Session)}
}

// GetOrCreate implements SessionStore.
func (m *MemoryStore) GetOrCreate(_ context.Context, chatID int64) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[chatID]
	if !ok {
		sess = NewSession()
		m.sessions[chatID] = sess
	}
	return sess, nil
}

// Save implements SessionStore. Sessions live in the map by pointer, so
// mutations are already visible; Save only covers chats created elsewhere.
func (m *MemoryStore) Save(_ context.Context, chatID int64, sess *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[chatID] = sess
	return nil
}
