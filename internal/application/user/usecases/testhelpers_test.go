package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"codergrounds/internal/domain/user"
	"codergrounds/internal/infrastructure/auth"
	"codergrounds/internal/infrastructure/cache"
	"codergrounds/internal/shared/logger"
)

type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

// fakeUserRepo is an in-memory user.Repository.
type fakeUserRepo struct {
	users map[string]*user.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*user.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmailOrUsername(ctx context.Context, identifier string) (*user.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == identifier || u.Username == identifier {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.users[u.ID]; !ok {
		return errors.New("user not found")
	}
	u.UpdatedAt = time.Now().UTC()
	r.users[u.ID] = u
	return nil
}

// fakeLinkRepo is an in-memory user.OAuthLinkRepository.
type fakeLinkRepo struct {
	links []*user.OAuthProviderLink
	err   error
}

func newFakeLinkRepo() *fakeLinkRepo { return &fakeLinkRepo{} }

func (r *fakeLinkRepo) Create(ctx context.Context, link *user.OAuthProviderLink) error {
	if r.err != nil {
		return r.err
	}
	for _, l := range r.links {
		if l.Provider == link.Provider && l.ProviderUserID == link.ProviderUserID {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	if link.ID == "" {
		link.ID = uuid.NewString()
	}
	link.CreatedAt = time.Now().UTC()
	r.links = append(r.links, link)
	return nil
}

func (r *fakeLinkRepo) GetByProviderAndUserID(ctx context.Context, provider, providerUserID string) (*user.OAuthProviderLink, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, l := range r.links {
		if l.Provider == provider && l.ProviderUserID == providerUserID {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeLinkRepo) ListByUserID(ctx context.Context, userID string) ([]*user.OAuthProviderLink, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*user.OAuthProviderLink
	for _, l := range r.links {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

// fakeRevoker is an in-memory TokenRevoker with switchable failure modes.
type fakeRevoker struct {
	revoked  map[string]bool
	writeErr error
	readErr  error
}

func newFakeRevoker() *fakeRevoker {
	return &fakeRevoker{revoked: make(map[string]bool)}
}

func (r *fakeRevoker) Blacklist(ctx context.Context, token string, ttl time.Duration) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	r.revoked[token] = true
	return nil
}

func (r *fakeRevoker) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	if r.readErr != nil {
		return false, r.readErr
	}
	return r.revoked[token], nil
}

// fakeStateStore is an in-memory single-use state store.
type fakeStateStore struct {
	states map[string]*cache.StateData
	genErr error
	conErr error
}

func newFakeStateStore() *fakeStateStore {
	return &fakeStateStore{states: make(map[string]*cache.StateData)}
}

func (s *fakeStateStore) Generate(ctx context.Context, provider, redirectAfterLogin string) (string, error) {
	if s.genErr != nil {
		return "", s.genErr
	}
	state := uuid.NewString()
	s.states[state] = &cache.StateData{
		Provider:           provider,
		RedirectAfterLogin: redirectAfterLogin,
		CreatedAt:          time.Now().UTC(),
	}
	return state, nil
}

func (s *fakeStateStore) Consume(ctx context.Context, state string) (*cache.StateData, error) {
	if s.conErr != nil {
		return nil, s.conErr
	}
	data, ok := s.states[state]
	if !ok {
		return nil, nil
	}
	delete(s.states, state)
	return data, nil
}

// fakeProvider is a scripted auth.Provider.
type fakeProvider struct {
	name        string
	profile     *auth.Profile
	exchangeErr error
	profileErr  error
}

func (p *fakeProvider) Name() string                        { return p.name }
func (p *fakeProvider) AuthorizationURL(state string) string {
	return fmt.Sprintf("https://example.com/authorize?state=%s", state)
}
func (p *fakeProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	if p.exchangeErr != nil {
		return "", p.exchangeErr
	}
	return "provider-access-token", nil
}
func (p *fakeProvider) FetchProfile(ctx context.Context, accessToken string) (*auth.Profile, error) {
	if p.profileErr != nil {
		return nil, p.profileErr
	}
	return p.profile, nil
}

// fakeProviderResolver resolves the single registered provider.
type fakeProviderResolver struct {
	provider *fakeProvider
	err      error
}

func (r *fakeProviderResolver) GetProvider(name string) (auth.Provider, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.provider, nil
}

// fakeTxManager runs the function directly without a database.
type fakeTxManager struct{}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestTokenService() *auth.TokenService {
	return auth.NewTokenService("test-access-secret", "test-refresh-secret", 15*time.Minute, 168*time.Hour)
}

func seedUser(repo *fakeUserRepo, hash string) *user.User {
	u := &user.User{
		ID:           uuid.NewString(),
		Email:        "ada@example.com",
		Username:     "ada-lovelace",
		Provider:     user.ProviderEmail,
		TokenVersion: 1,
	}
	if hash != "" {
		u.PasswordHash = &hash
	}
	repo.users[u.ID] = u
	return u
}
