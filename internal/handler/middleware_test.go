package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		validateErr    error
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong format",
			authHeader:     "Basic abc123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "too many parts",
			authHeader:     "Bearer one two",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty token",
			authHeader:     "Bearer ",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer bad-token",
			validateErr:    errors.New("invalid jwt"),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "valid token",
			authHeader:     "Bearer good-token",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{user: testUser(), validateErr: tt.validateErr}
			middleware := NewAuthMiddleware(auth, NewMockHandlerLogger())

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				user, ok := GetUserFromContext(r)
				if !ok || user.ID != "user-1" {
					t.Error("Expected user in request context")
				}
				token, ok := GetTokenFromContext(r)
				if !ok || token != "good-token" {
					t.Error("Expected token in request context")
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/api/v1/chat", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rr := httptest.NewRecorder()
			middleware.Middleware(next).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
			if nextCalled != tt.expectNext {
				t.Errorf("Expected next called %v, got %v", tt.expectNext, nextCalled)
			}
		})
	}
}
