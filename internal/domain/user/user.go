package user

import "time"

// Auth provider identifiers. Provider records how the account was first
// created; OAuth links are tracked separately and an email account may
// later gain linked providers.
const (
	ProviderEmail  = "email"
	ProviderGitHub = "github"
	ProviderGoogle = "google"
)

// User is the account aggregate. PasswordHash is nil for accounts created
// through an OAuth provider that never set a password.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash *string
	AvatarURL    *string
	Provider     string
	TokenVersion int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether the account can authenticate with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// BumpTokenVersion invalidates every outstanding refresh token by moving
// the version forward. Tokens minted before the bump fail the version
// check on rotation.
func (u *User) BumpTokenVersion() {
	u.TokenVersion++
}

// SetPassword stores a new password hash on the account.
func (u *User) SetPassword(hash string) {
	u.PasswordHash = &hash
}
