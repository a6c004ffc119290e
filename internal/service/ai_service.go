package service

import (
	"context"
	"fmt"
	"strings"

	"file-converter/internal/domain"

	"cloud.google.com/go/vertexai/genai"
)

const chatModelName = "gemini-2.0-flash-001"

// GeminiGenerator produces chat replies through Vertex AI. It is an
// explicitly constructed dependency: callers create it once at startup
// and pass it down, so tests substitute a stub instead of fighting
// process-wide state.
type GeminiGenerator struct {
	client *genai.Client
	logger domain.Logger
}

// NewGeminiGenerator creates a Vertex AI backed text generator.
func NewGeminiGenerator(ctx context.Context, projectID, location string, logger domain.Logger) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}
	return &GeminiGenerator{
		client: client,
		logger: logger,
	}, nil
}

// Generate sends the prompt with the prior turns as chat history and
// returns the model's text reply.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, history []*domain.ChatMessage) (string, error) {
	model := g.client.GenerativeModel(chatModelName)
	model.SetTemperature(0.5)

	chat := model.StartChat()
	for _, m := range history {
		role := "user"
		if m.Role == "model" {
			role = "model"
		}
		chat.History = append(chat.History, &genai.Content{
			Role: role,
			Parts: []genai.Part{
				genai.Text(m.Content),
			},
		})
	}

	resp, err := chat.SendMessage(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String(), nil
}

// Close releases the underlying client connection.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}
