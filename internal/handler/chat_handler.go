package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pdf-chat-server/internal/domain"
)

// ChatHandler answers questions about the session's current document.
type ChatHandler struct {
	store    domain.ArtifactStore
	answerer domain.AnswerClient
	sessions domain.SessionStore
	logger   domain.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(
	store domain.ArtifactStore,
	answerer domain.AnswerClient,
	sessions domain.SessionStore,
	logger domain.Logger,
) *ChatHandler {
	return &ChatHandler{
		store:    store,
		answerer: answerer,
		sessions: sessions,
		logger:   logger,
	}
}

// Ask handles one question: it loads the persisted document text, invokes
// the remote answer endpoint and appends the pair to the conversation.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	if h.answerer == nil {
		writeError(w, http.StatusServiceUnavailable, "Answer service not configured")
		return
	}

	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "question cannot be empty")
		return
	}
	const maxQuestionLen = 2000
	if len(req.Question) > maxQuestionLen {
		writeError(w, http.StatusBadRequest, "question too long")
		return
	}

	key, ok := h.sessions.DocumentKey(user.ID)
	if !ok {
		writeError(w, http.StatusBadRequest, "No document uploaded")
		return
	}

	documentText, err := h.store.Get(r.Context(), key)
	if err != nil {
		h.logger.Error("Failed to load document text", err, "user_id", user.ID, "key", key)
		writeError(w, http.StatusInternalServerError, "Failed to load document text")
		return
	}

	answer, err := h.answerer.Answer(r.Context(), req.Question, string(documentText))
	if err != nil {
		h.logger.Error("Answer request failed", err, "user_id", user.ID, "key", key)
		writeError(w, http.StatusBadGateway, "Failed to answer the question")
		return
	}

	h.sessions.Append(user.ID, domain.ConversationEntry{
		Question: req.Question,
		Answer:   answer,
		AskedAt:  time.Now().UTC(),
	})

	writeJSON(w, http.StatusOK, domain.ChatResponse{
		Answer:       answer,
		Conversation: h.sessions.History(user.ID),
	})
}

// GetConversation returns the session's question/answer history in order.
func (h *ChatHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	history := h.sessions.History(user.ID)
	if history == nil {
		history = []domain.ConversationEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"conversation": history})
}
