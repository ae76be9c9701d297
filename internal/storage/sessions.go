package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/itmo-abit/planbot/internal/bot"
	"github.com/itmo-abit/planbot/internal/curriculum"
	"github.com/itmo-abit/planbot/internal/metrics"
)

// SessionStore is a bot.SessionStore backed by SQLite. Tags are stored as
// a JSON array in a TEXT column; a session row is written on every Save,
// keyed by the Telegram chat id.
type SessionStore struct {
	db      *DB
	metrics *metrics.Metrics
}

var _ bot.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a session store over an open database.
// m may be nil.
func NewSessionStore(db *DB, m *metrics.Metrics) *SessionStore {
	return &SessionStore{db: db, metrics: m}
}

// GetOrCreate loads the session for the chat. A chat without a stored row
// gets a fresh default session; it is persisted on the next Save.
func (s *SessionStore) GetOrCreate(ctx context.Context, chatID int64) (*bot.Session, error) {
	var program, tagsJSON string
	err := s.db.conn.QueryRowContext(ctx,
		"SELECT program, tags FROM sessions WHERE chat_id = ?", chatID,
	).Scan(&program, &tagsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		s.record("load", "success")
		return bot.NewSession(), nil
	}
	if err != nil {
		s.record("load", "error")
		return nil, fmt.Errorf("load session %d: %w", chatID, err)
	}

	sess := bot.NewSession()
	if id := curriculum.ProgramID(program); id == curriculum.ProgramAI || id == curriculum.ProgramAIProduct {
		sess.Program = id
	}
	var tags []string
	if err := json.Unmarshal([]byte(tagsJSON), &tags); err != nil {
		// A corrupt tags column loses the tags, not the whole session.
		tags = nil
	}
	sess.Tags = tags

	s.record("load", "success")
	return sess, nil
}

// Save upserts the session row for the chat.
func (s *SessionStore) Save(ctx context.Context, chatID int64, sess *bot.Session) error {
	tagsJSON, err := json.Marshal(sess.Tags)
	if err != nil {
		s.record("save", "error")
		return fmt.Errorf("marshal tags for %d: %w", chatID, err)
	}

	_, err = s.db.conn.ExecContext(ctx, `
		INSERT INTO sessions (chat_id, program, tags, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(chat_id) DO UPDATE SET
			program = excluded.program,
			tags = excluded.tags,
			updated_at = CURRENT_TIMESTAMP
	`, chatID, string(sess.Program), string(tagsJSON))
	if err != nil {
		s.record("save", "error")
		return fmt.Errorf("save session %d: %w", chatID, err)
	}

	s.record("save", "success")
	return nil
}

func (s *SessionStore) record(op, status string) {
	if s.metrics != nil {
		s.metrics.RecordSessionOp(op, status)
	}
}
