package service

import (
	"sync"

	"pdf-chat-server/internal/domain"
)

type sessionState struct {
	documentKey  string
	conversation []domain.ConversationEntry
}

// MemorySessionStore holds per-user session state: the current document's
// artifact store key and the ordered conversation history. Sessions for
// different users are independent; access is mutex-guarded so concurrent
// requests are safe.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionState
}

// NewMemorySessionStore creates an empty session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*sessionState),
	}
}

// SetDocument makes key the user's current document. Submitting a new
// document always resets the conversation history.
func (s *MemorySessionStore) SetDocument(userID string, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = &sessionState{documentKey: key}
}

// DocumentKey returns the user's current document key, if any.
func (s *MemorySessionStore) DocumentKey(userID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	if !ok || sess.documentKey == "" {
		return "", false
	}
	return sess.documentKey, true
}

// Append adds a question/answer pair to the user's conversation. Entries
// for a user without a session are dropped; a conversation only exists for
// a submitted document.
func (s *MemorySessionStore) Append(userID string, entry domain.ConversationEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return
	}
	sess.conversation = append(sess.conversation, entry)
}

// History returns a copy of the user's conversation in ask order.
func (s *MemorySessionStore) History(userID string) []domain.ConversationEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return nil
	}
	out := make([]domain.ConversationEntry, len(sess.conversation))
	copy(out, sess.conversation)
	return out
}

// Reset clears the user's session entirely.
func (s *MemorySessionStore) Reset(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
