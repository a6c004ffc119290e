package handler

import (
	"encoding/json"
	"net/http"

	"file-converter/internal/domain"

	"github.com/gorilla/mux"
)

// ChatHandler handles chat HTTP requests
type ChatHandler struct {
	chat   domain.ChatService
	logger domain.Logger
}

// NewChatHandler creates a new chat handler. The service may be nil
// when the model backend is not configured; every endpoint then
// responds 503.
func NewChatHandler(chat domain.ChatService, logger domain.Logger) *ChatHandler {
	return &ChatHandler{
		chat:   chat,
		logger: logger,
	}
}

func (h *ChatHandler) available(w http.ResponseWriter) bool {
	if h.chat == nil {
		writeError(w, http.StatusServiceUnavailable, "chat is not configured")
		return false
	}
	return true
}

// Send handles one chat turn.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.chat.Send(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// History lists recent sessions.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	sessions, err := h.chat.ListSessions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if sessions == nil {
		sessions = make([]*domain.ChatSession, 0)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}

// Messages returns one session's transcript.
func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	sessionID := mux.Vars(r)["sessionId"]
	history, err := h.chat.GetMessages(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, history)
}

// Delete removes a session and its messages.
func (h *ChatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	sessionID := mux.Vars(r)["sessionId"]
	if err := h.chat.DeleteSession(r.Context(), sessionID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
