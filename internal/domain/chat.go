package domain

import (
	"context"
	"errors"
	"time"
)

// Domain errors
var (
	ErrSessionNotFound = errors.New("chat session not found")
	ErrInvalidFile     = errors.New("invalid file")
)

// ChatSession groups the messages of one conversation.
type ChatSession struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// MessageCount is populated on listing only.
	MessageCount int `json:"message_count"`
}

// ChatMessage is one turn of a conversation.
type ChatMessage struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"` // "user" or "model"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"timestamp"`
}

// ChatRequest is the inbound chat payload.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse is the outbound chat payload.
type ChatResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	Title     string `json:"title"`
}

// ChatRepository defines persistence operations for chat sessions.
type ChatRepository interface {
	CreateSession(ctx context.Context, session *ChatSession) error
	GetSession(ctx context.Context, sessionID string) (*ChatSession, error)
	ListSessions(ctx context.Context, limit int) ([]*ChatSession, error)
	UpdateSessionTitle(ctx context.Context, sessionID, title string) error
	DeleteSession(ctx context.Context, sessionID string) error
	CreateMessage(ctx context.Context, message *ChatMessage) error
	GetMessages(ctx context.Context, sessionID string) ([]*ChatMessage, error)
	CountMessages(ctx context.Context, sessionID string) (int, error)
}

// ChatService defines the use-case operations for the chat feature.
type ChatService interface {
	Send(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	ListSessions(ctx context.Context) ([]*ChatSession, error)
	GetMessages(ctx context.Context, sessionID string) (*ChatHistory, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// ChatHistory is the payload returned by the session messages endpoint.
type ChatHistory struct {
	SessionID string         `json:"session_id"`
	Title     string         `json:"title"`
	Messages  []*ChatMessage `json:"messages"`
}

// TextGenerator produces a model reply for a prompt given prior turns.
// It exists as an explicit dependency so tests can substitute a stub
// without touching process-wide state.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, history []*ChatMessage) (string, error)
	Close() error
}
