package repository

import (
	"fmt"

	"pdf-chat-server/internal/domain"

	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"
)

// SupabaseClient implements the domain.SupabaseClient interface
type SupabaseClient struct {
	client *supabase.Client
	config domain.Config
	logger domain.Logger
}

// NewSupabaseClient creates a new Supabase client instance
func NewSupabaseClient(config domain.Config, logger domain.Logger) domain.SupabaseClient {
	return &SupabaseClient{
		config: config,
		logger: logger,
	}
}

// Initialize establishes a connection to Supabase
func (s *SupabaseClient) Initialize() error {
	supabaseURL := s.config.GetSupabaseURL()
	supabaseKey := s.config.GetSupabaseKey()

	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("supabase URL and key must be provided")
	}

	client, err := supabase.NewClient(supabaseURL, supabaseKey, &supabase.ClientOptions{})
	if err != nil {
		return fmt.Errorf("failed to create Supabase client: %w", err)
	}

	s.client = client
	s.logger.Info("Supabase client initialized successfully", "url", supabaseURL)
	return nil
}

// ValidateToken validates a Supabase JWT token and returns user info
func (s *SupabaseClient) ValidateToken(token string) (*domain.SupabaseUser, error) {
	if s.client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	// Get user info using an auth client with the access token.
	// Note: passing "Authorization" via Supabase client headers does not affect GoTrue requests.
	user, err := s.client.Auth.WithToken(token).GetUser()
	if err != nil {
		s.logger.Error("Failed to validate token with Supabase", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	return &domain.SupabaseUser{
		ID:           user.ID.String(),
		Email:        user.Email,
		UserMetadata: user.UserMetadata,
		CreatedAt:    user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    user.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

// SignUp registers a new user with the identity provider.
func (s *SupabaseClient) SignUp(email, password string) error {
	if s.client == nil {
		return fmt.Errorf("supabase client not initialized")
	}

	if _, err := s.client.Auth.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
	}); err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}
	return nil
}

// SignIn authenticates a user and returns an access token.
func (s *SupabaseClient) SignIn(email, password string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("supabase client not initialized")
	}

	session, err := s.client.SignInWithEmailPassword(email, password)
	if err != nil {
		return "", fmt.Errorf("sign in failed: %w", err)
	}
	return session.AccessToken, nil
}
