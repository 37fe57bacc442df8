package service

import (
	"fmt"

	"pdf-chat-server/internal/domain"
)

type authService struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

// NewAuthService creates the authentication use-case layer over the
// external identity provider.
func NewAuthService(
	supabaseClient domain.SupabaseClient,
	logger domain.Logger,
) domain.AuthService {
	return &authService{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// Register creates a new account with the identity provider.
func (s *authService) Register(email, password string) error {
	if err := s.supabaseClient.SignUp(email, password); err != nil {
		s.logger.Error("Registration failed", err, "email", email)
		return fmt.Errorf("registration failed: %w", err)
	}
	return nil
}

// Login authenticates and returns an access token for subsequent requests.
func (s *authService) Login(email, password string) (string, error) {
	token, err := s.supabaseClient.SignIn(email, password)
	if err != nil {
		s.logger.Error("Login failed", err, "email", email)
		return "", fmt.Errorf("login failed: %w", err)
	}
	return token, nil
}

// ValidateToken validates a token and returns user info.
func (s *authService) ValidateToken(token string) (*domain.SupabaseUser, error) {
	user, err := s.supabaseClient.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	return user, nil
}
