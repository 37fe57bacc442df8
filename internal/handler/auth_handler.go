package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"pdf-chat-server/internal/domain"
)

// AuthHandler handles registration and login against the external identity
// provider. The core pipeline only consumes the resulting user identity.
type AuthHandler struct {
	authService domain.AuthService
	logger      domain.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService domain.AuthService, logger domain.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	if err := h.authService.Register(req.Email, req.Password); err != nil {
		writeError(w, http.StatusBadRequest, "Registration failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

// Login exchanges credentials for an access token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"access_token": token})
}

// GetProfile returns the current user's profile information
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
