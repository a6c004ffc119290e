package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"file-converter/internal/domain"
	apperrors "file-converter/pkg/errors"

	"github.com/google/uuid"
)

const (
	sessionTitleMaxLen = 50
	sessionListLimit   = 20
)

// ChatManager implements the chat use cases on top of a repository and
// a text generator. Sessions are created lazily on the first message
// and titled from it.
type ChatManager struct {
	repo      domain.ChatRepository
	generator domain.TextGenerator
	logger    domain.Logger
}

// NewChatManager creates a new chat service
func NewChatManager(repo domain.ChatRepository, generator domain.TextGenerator, logger domain.Logger) *ChatManager {
	return &ChatManager{
		repo:      repo,
		generator: generator,
		logger:    logger,
	}
}

// Send stores the user's message, asks the model for a reply with the
// session's prior turns as history, and stores the reply.
func (s *ChatManager) Send(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, apperrors.NewValidationError("message must not be empty")
	}

	var session *domain.ChatSession
	if req.SessionID != "" {
		var err error
		session, err = s.repo.GetSession(ctx, req.SessionID)
		if err != nil {
			return nil, err
		}
	} else {
		session = &domain.ChatSession{
			ID:        uuid.New().String(),
			Title:     sessionTitle(message),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.repo.CreateSession(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
		s.logger.Info("chat session created", "session_id", session.ID)
	}

	// History is read before the current message is stored so the model
	// does not see the prompt twice.
	history, err := s.repo.GetMessages(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	userMsg := &domain.ChatMessage{
		SessionID: session.ID,
		Role:      "user",
		Content:   message,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateMessage(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	answer, err := s.generator.Generate(ctx, message, history)
	if err != nil {
		s.logger.Error("text generation failed", err, "session_id", session.ID)
		return nil, apperrors.NewInternalError("failed to generate reply", err)
	}

	modelMsg := &domain.ChatMessage{
		SessionID: session.ID,
		Role:      "model",
		Content:   answer,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateMessage(ctx, modelMsg); err != nil {
		s.logger.Warn("failed to store model reply", "session_id", session.ID, "error", err.Error())
	}

	return &domain.ChatResponse{
		Message:   answer,
		SessionID: session.ID,
		Title:     session.Title,
	}, nil
}

// ListSessions returns the most recently updated sessions with their
// message counts.
func (s *ChatManager) ListSessions(ctx context.Context) ([]*domain.ChatSession, error) {
	sessions, err := s.repo.ListSessions(ctx, sessionListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// GetMessages returns the full transcript of one session.
func (s *ChatManager) GetMessages(ctx context.Context, sessionID string) (*domain.ChatHistory, error) {
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	messages, err := s.repo.GetMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}
	return &domain.ChatHistory{
		SessionID: session.ID,
		Title:     session.Title,
		Messages:  messages,
	}, nil
}

// DeleteSession removes a session and its messages.
func (s *ChatManager) DeleteSession(ctx context.Context, sessionID string) error {
	return s.repo.DeleteSession(ctx, sessionID)
}

// sessionTitle derives a session title from its first message.
func sessionTitle(message string) string {
	runes := []rune(message)
	if len(runes) <= sessionTitleMaxLen {
		return message
	}
	return string(runes[:sessionTitleMaxLen])
}
