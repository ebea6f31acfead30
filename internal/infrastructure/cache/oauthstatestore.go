package cache

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"codergrounds/internal/shared/constants"
)

const stateTokenBytes = 64

// StateData is the record bound to an OAuth state token.
type StateData struct {
	Provider           string    `json:"provider"`
	RedirectAfterLogin string    `json:"redirectAfterLogin"`
	CreatedAt          time.Time `json:"createdAt"`
}

// OAuthStateStore provides single-use CSRF state tokens for the OAuth flow.
// A state is deleted on first read regardless of outcome, so a replayed state
// is detected simply by its absence on the second read.
type OAuthStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOAuthStateStore creates a new OAuthStateStore. The recommended TTL is
// 10 minutes.
func NewOAuthStateStore(client *redis.Client, ttl time.Duration) *OAuthStateStore {
	return &OAuthStateStore{client: client, ttl: ttl}
}

// Generate creates a random state token, stores the provider and redirect
// intent under it, and returns the URL-safe token.
func (s *OAuthStateStore) Generate(ctx context.Context, provider, redirectAfterLogin string) (string, error) {
	if provider == "" {
		return "", errors.New("provider cannot be empty")
	}
	if redirectAfterLogin == "" {
		redirectAfterLogin = "/"
	}

	raw := make([]byte, stateTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate state token: %w", err)
	}
	state := base64.RawURLEncoding.EncodeToString(raw)

	data, err := json.Marshal(StateData{
		Provider:           provider,
		RedirectAfterLogin: redirectAfterLogin,
		CreatedAt:          time.Now().UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal state data: %w", err)
	}

	if err := s.client.Set(ctx, s.buildKey(state), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store oauth state: %w", err)
	}

	return state, nil
}

// Consume fetches and deletes the state in one atomic GETDEL, enforcing
// single use. Returns nil when the state is absent, expired, or already
// consumed; any Redis failure is a hard error.
func (s *OAuthStateStore) Consume(ctx context.Context, state string) (*StateData, error) {
	if state == "" {
		return nil, nil
	}

	raw, err := s.client.GetDel(ctx, s.buildKey(state)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to consume oauth state: %w", err)
	}

	var data StateData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal oauth state: %w", err)
	}

	return &data, nil
}

func (s *OAuthStateStore) buildKey(state string) string {
	return constants.CacheKeyOAuthStatePrefix + state
}
