package user

import "context"

// Repository defines the interface for user data operations.
// Lookup methods return (nil, nil) when no row matches.
type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetByEmailOrUsername retrieves a user matching the identifier on
	// either column
	GetByEmailOrUsername(ctx context.Context, identifier string) (*User, error)

	// Update updates an existing user
	Update(ctx context.Context, user *User) error
}

// OAuthLinkRepository defines the interface for provider link operations.
type OAuthLinkRepository interface {
	// Create creates a new provider link
	Create(ctx context.Context, link *OAuthProviderLink) error

	// GetByProviderAndUserID retrieves a link by external identity
	GetByProviderAndUserID(ctx context.Context, provider, providerUserID string) (*OAuthProviderLink, error)

	// ListByUserID retrieves all links for a user
	ListByUserID(ctx context.Context, userID string) ([]*OAuthProviderLink, error)
}

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
