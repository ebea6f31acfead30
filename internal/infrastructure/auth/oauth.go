package auth

import (
	"context"
	"net/http"
	"time"

	"codergrounds/internal/shared/config"
	apperrors "codergrounds/internal/shared/errors"
)

// Profile is the normalized identity returned by every OAuth provider.
type Profile struct {
	Provider       string
	ProviderUserID string
	Email          string
	Name           string
	AvatarURL      string
}

// Provider abstracts a single OAuth2 identity provider.
type Provider interface {
	// Name returns the provider identifier, e.g. "github".
	Name() string
	// AuthorizationURL builds the provider consent URL for the given state.
	AuthorizationURL(state string) string
	// ExchangeCode trades an authorization code for a provider access token.
	ExchangeCode(ctx context.Context, code string) (string, error)
	// FetchProfile loads the normalized user profile for an access token.
	FetchProfile(ctx context.Context, accessToken string) (*Profile, error)
}

// ProviderFactory resolves OAuth providers by name. Providers with missing
// credentials are not registered, so a misconfigured provider surfaces as an
// invalid-provider error instead of a broken consent flow.
type ProviderFactory struct {
	providers map[string]Provider
}

func NewProviderFactory(cfg *config.OAuthConfig) *ProviderFactory {
	client := &http.Client{Timeout: cfg.ClientTimeout}
	if cfg.ClientTimeout <= 0 {
		client.Timeout = 10 * time.Second
	}

	providers := make(map[string]Provider)
	if cfg.GitHub.ClientID != "" && cfg.GitHub.ClientSecret != "" {
		p := NewGitHubProvider(cfg.GitHub, client)
		providers[p.Name()] = p
	}
	if cfg.Google.ClientID != "" && cfg.Google.ClientSecret != "" {
		p := NewGoogleProvider(cfg.Google, client)
		providers[p.Name()] = p
	}

	return &ProviderFactory{providers: providers}
}

// GetProvider returns the provider registered under name.
func (f *ProviderFactory) GetProvider(name string) (Provider, error) {
	p, ok := f.providers[name]
	if !ok {
		return nil, apperrors.NewInvalidProviderError(name)
	}
	return p, nil
}

// Names lists the registered provider identifiers.
func (f *ProviderFactory) Names() []string {
	names := make([]string, 0, len(f.providers))
	for name := range f.providers {
		names = append(names, name)
	}
	return names
}
