package domain

// SupabaseUser represents a user from Supabase Auth
type SupabaseUser struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
	CreatedAt    string                 `json:"created_at"`
	UpdatedAt    string                 `json:"updated_at"`
}

// SupabaseClient wraps the external identity provider.
type SupabaseClient interface {
	Initialize() error
	ValidateToken(token string) (*SupabaseUser, error)
	SignUp(email, password string) error
	SignIn(email, password string) (accessToken string, err error)
}

// AuthService defines the use-case operations for authentication.
type AuthService interface {
	Register(email, password string) error
	Login(email, password string) (accessToken string, err error)
	ValidateToken(token string) (*SupabaseUser, error)
}
