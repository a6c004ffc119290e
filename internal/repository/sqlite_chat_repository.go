package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"file-converter/internal/domain"

	_ "modernc.org/sqlite"
)

// Schema for the chat tables. Call SQLiteChatRepository.Init() or apply manually.
const Schema = `
CREATE TABLE IF NOT EXISTS chat_sessions (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS chat_messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL REFERENCES chat_sessions(id) ON DELETE CASCADE,
	role TEXT NOT NULL,
	content TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chat_messages_session ON chat_messages(session_id, id);
CREATE INDEX IF NOT EXISTS idx_chat_sessions_updated ON chat_sessions(updated_at);
`

// SQLiteChatRepository persists chat sessions and messages to a SQLite
// database. Timestamps are stored as Unix milliseconds.
type SQLiteChatRepository struct {
	db *sql.DB
}

// OpenChatDB opens (or creates) the chat database at path.
func OpenChatDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open chat db %s: %w", path, err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return db, nil
}

// NewSQLiteChatRepository creates a chat repository backed by the given
// database connection.
func NewSQLiteChatRepository(db *sql.DB) *SQLiteChatRepository {
	return &SQLiteChatRepository{db: db}
}

// Init creates the chat tables if they don't exist.
func (r *SQLiteChatRepository) Init() error {
	_, err := r.db.Exec(Schema)
	return err
}

// CreateSession inserts a new session row.
func (r *SQLiteChatRepository) CreateSession(ctx context.Context, session *domain.ChatSession) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO chat_sessions (id, title, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		session.ID, session.Title, session.CreatedAt.UnixMilli(), session.UpdatedAt.UnixMilli())
	return err
}

// GetSession loads one session by id.
func (r *SQLiteChatRepository) GetSession(ctx context.Context, sessionID string) (*domain.ChatSession, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, created_at, updated_at FROM chat_sessions WHERE id = ?`, sessionID)

	var s domain.ChatSession
	var created, updated int64
	if err := row.Scan(&s.ID, &s.Title, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	s.CreatedAt = time.UnixMilli(created)
	s.UpdatedAt = time.UnixMilli(updated)
	return &s, nil
}

// ListSessions returns the most recently updated sessions, newest
// first, with message counts.
func (r *SQLiteChatRepository) ListSessions(ctx context.Context, limit int) ([]*domain.ChatSession, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.title, s.created_at, s.updated_at, COUNT(m.id)
		FROM chat_sessions s
		LEFT JOIN chat_messages m ON m.session_id = s.id
		GROUP BY s.id
		ORDER BY s.updated_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*domain.ChatSession
	for rows.Next() {
		var s domain.ChatSession
		var created, updated int64
		if err := rows.Scan(&s.ID, &s.Title, &created, &updated, &s.MessageCount); err != nil {
			return nil, err
		}
		s.CreatedAt = time.UnixMilli(created)
		s.UpdatedAt = time.UnixMilli(updated)
		sessions = append(sessions, &s)
	}
	return sessions, rows.Err()
}

// UpdateSessionTitle renames a session.
func (r *SQLiteChatRepository) UpdateSessionTitle(ctx context.Context, sessionID, title string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE chat_sessions SET title = ?, updated_at = ? WHERE id = ?`,
		title, time.Now().UnixMilli(), sessionID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteSession removes a session; its messages cascade.
func (r *SQLiteChatRepository) DeleteSession(ctx context.Context, sessionID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM chat_sessions WHERE id = ?`, sessionID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// CreateMessage appends a message and bumps the session's updated_at.
func (r *SQLiteChatRepository) CreateMessage(ctx context.Context, message *domain.ChatMessage) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO chat_messages (session_id, role, content, created_at) VALUES (?, ?, ?, ?)`,
		message.SessionID, message.Role, message.Content, message.CreatedAt.UnixMilli())
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	message.ID = id

	if _, err := tx.ExecContext(ctx,
		`UPDATE chat_sessions SET updated_at = ? WHERE id = ?`,
		message.CreatedAt.UnixMilli(), message.SessionID); err != nil {
		return err
	}

	return tx.Commit()
}

// GetMessages returns a session's messages in insertion order.
func (r *SQLiteChatRepository) GetMessages(ctx context.Context, sessionID string) ([]*domain.ChatMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, role, content, created_at FROM chat_messages
		WHERE session_id = ? ORDER BY id`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		var created int64
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &created); err != nil {
			return nil, err
		}
		m.CreatedAt = time.UnixMilli(created)
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// CountMessages returns the number of messages in a session.
func (r *SQLiteChatRepository) CountMessages(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM chat_messages WHERE session_id = ?`, sessionID).Scan(&count)
	return count, err
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
