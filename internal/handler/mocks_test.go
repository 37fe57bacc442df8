package handler

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"pdf-chat-server/internal/domain"
)

type mockAuthService struct {
	user        *domain.SupabaseUser
	validateErr error
	registerErr error
	loginToken  string
	loginErr    error
}

func (m *mockAuthService) Register(email, password string) error { return m.registerErr }

func (m *mockAuthService) Login(email, password string) (string, error) {
	if m.loginErr != nil {
		return "", m.loginErr
	}
	return m.loginToken, nil
}

func (m *mockAuthService) ValidateToken(token string) (*domain.SupabaseUser, error) {
	if m.validateErr != nil {
		return nil, m.validateErr
	}
	return m.user, nil
}

type mockExtractionService struct {
	result *domain.ExtractionResult
	err    error
	calls  int
}

func (m *mockExtractionService) ExtractAndStore(ctx context.Context, userID string, upload domain.FileInfo) (*domain.ExtractionResult, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

type mockFileHandler struct {
	info    *domain.FileInfo
	saveErr error
}

func (m *mockFileHandler) SaveUpload(file multipart.File, originalName string) (*domain.FileInfo, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	return m.info, nil
}

func (m *mockFileHandler) Remove(path string) error { return nil }

func (m *mockFileHandler) SweepStale(ctx context.Context, maxAge time.Duration) (int, error) {
	return 0, nil
}

type mockSessionStore struct {
	mu       sync.Mutex
	keys     map[string]string
	history  map[string][]domain.ConversationEntry
	setCalls int
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{
		keys:    make(map[string]string),
		history: make(map[string][]domain.ConversationEntry),
	}
}

func (m *mockSessionStore) SetDocument(userID string, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls++
	m.keys[userID] = key
	m.history[userID] = nil
}

func (m *mockSessionStore) DocumentKey(userID string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.keys[userID]
	return key, ok
}

func (m *mockSessionStore) Append(userID string, entry domain.ConversationEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history[userID] = append(m.history[userID], entry)
}

func (m *mockSessionStore) History(userID string) []domain.ConversationEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.history[userID]
}

func (m *mockSessionStore) Reset(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keys, userID)
	delete(m.history, userID)
}

type mockArtifactStore struct {
	data   map[string][]byte
	getErr error
}

func (m *mockArtifactStore) Put(ctx context.Context, key string, data []byte) error {
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = data
	return nil
}

func (m *mockArtifactStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	data, ok := m.data[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

type mockAnswerer struct {
	answer  string
	err     error
	gotText string
}

func (m *mockAnswerer) Answer(ctx context.Context, question string, documentText string) (string, error) {
	m.gotText = documentText
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

func testUser() *domain.SupabaseUser {
	return &domain.SupabaseUser{ID: "user-1", Email: "test@example.com"}
}

// requestWithUser builds a request that already passed auth middleware.
func requestWithUser(r *http.Request, user *domain.SupabaseUser) *http.Request {
	ctx := context.WithValue(r.Context(), userContextKey, user)
	return r.WithContext(ctx)
}

func doRequest(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h(rr, r)
	return rr
}
