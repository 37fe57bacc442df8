package domain

import (
	"context"
	"time"
)

// ConversationEntry is one question/answer pair in a user's session.
type ConversationEntry struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	AskedAt  time.Time `json:"asked_at"`
}

// ChatRequest is the payload for asking a question about the current document.
type ChatRequest struct {
	Question string `json:"question"`
}

// ChatResponse carries the answer plus the updated conversation history.
type ChatResponse struct {
	Answer       string              `json:"answer"`
	Conversation []ConversationEntry `json:"conversation"`
}

// AnswerClient invokes the remote question-answering endpoint. The endpoint
// is a black box: it receives the question and the full document text and
// returns an answer.
type AnswerClient interface {
	Answer(ctx context.Context, question string, documentText string) (string, error)
}

// SessionStore holds per-user session state: the artifact store key of the
// current document and the ordered conversation history. Setting a new
// document always resets the history.
type SessionStore interface {
	SetDocument(userID string, key string)
	DocumentKey(userID string) (string, bool)
	Append(userID string, entry ConversationEntry)
	History(userID string) []ConversationEntry
	Reset(userID string)
}
