package user

import "time"

// OAuthProviderLink connects a user account to an external identity.
// The (Provider, ProviderUserID) pair is unique across all users.
type OAuthProviderLink struct {
	ID             string
	UserID         string
	Provider       string
	ProviderUserID string
	ProviderEmail  *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
