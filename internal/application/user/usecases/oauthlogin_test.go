package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codergrounds/internal/domain/user"
	"codergrounds/internal/infrastructure/auth"
	apperrors "codergrounds/internal/shared/errors"
)

type oauthFixture struct {
	repo     *fakeUserRepo
	links    *fakeLinkRepo
	states   *fakeStateStore
	provider *fakeProvider
	uc       *OAuthLoginUseCase
}

func newOAuthFixture(profile *auth.Profile) *oauthFixture {
	repo := newFakeUserRepo()
	links := newFakeLinkRepo()
	states := newFakeStateStore()
	provider := &fakeProvider{name: "github", profile: profile}
	resolver := &fakeProviderResolver{provider: provider}
	svc := newTestTokenService()

	return &oauthFixture{
		repo:     repo,
		links:    links,
		states:   states,
		provider: provider,
		uc: NewOAuthLoginUseCase(
			repo, links, resolver, states, svc, &fakeTxManager{}, newNopLogger(),
		),
	}
}

func githubProfile() *auth.Profile {
	return &auth.Profile{
		Provider:       "github",
		ProviderUserID: "12345",
		Email:          "octocat@example.com",
		Name:           "Mona Octocat",
		AvatarURL:      "https://avatars.example.com/u/12345",
	}
}

func (f *oauthFixture) issueState(t *testing.T) string {
	t.Helper()
	state, err := f.states.Generate(context.Background(), "github", "/dashboard")
	require.NoError(t, err)
	return state
}

func TestOAuthLogin_CreatesNewAccount(t *testing.T) {
	f := newOAuthFixture(githubProfile())
	ctx := context.Background()

	result, err := f.uc.Execute(ctx, OAuthLoginCommand{
		Provider: "github",
		Code:     "auth-code",
		State:    f.issueState(t),
	})
	require.NoError(t, err)

	assert.Equal(t, "mona-octocat", result.User.Username)
	assert.Equal(t, "octocat@example.com", result.User.Email)
	assert.Equal(t, user.ProviderGitHub, result.User.Provider)
	assert.Equal(t, 1, result.User.TokenVersion)
	assert.Nil(t, result.User.PasswordHash)
	require.NotNil(t, result.User.AvatarURL)
	assert.Equal(t, "https://avatars.example.com/u/12345", *result.User.AvatarURL)
	assert.Equal(t, "/dashboard", result.RedirectAfterLogin)

	links, err := f.links.ListByUserID(ctx, result.User.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "12345", links[0].ProviderUserID)
}

func TestOAuthLogin_ExistingLinkLogsIn(t *testing.T) {
	f := newOAuthFixture(githubProfile())
	ctx := context.Background()

	first, err := f.uc.Execute(ctx, OAuthLoginCommand{
		Provider: "github", Code: "code-1", State: f.issueState(t),
	})
	require.NoError(t, err)

	second, err := f.uc.Execute(ctx, OAuthLoginCommand{
		Provider: "github", Code: "code-2", State: f.issueState(t),
	})
	require.NoError(t, err)

	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Len(t, f.links.links, 1)
	assert.Len(t, f.repo.users, 1)
}

func TestOAuthLogin_LinksToExistingEmailAccount(t *testing.T) {
	f := newOAuthFixture(githubProfile())
	ctx := context.Background()

	existing := &user.User{
		Email:        "octocat@example.com",
		Username:     "octocat",
		Provider:     user.ProviderEmail,
		TokenVersion: 4,
	}
	require.NoError(t, f.repo.Create(ctx, existing))

	result, err := f.uc.Execute(ctx, OAuthLoginCommand{
		Provider: "github", Code: "auth-code", State: f.issueState(t),
	})
	require.NoError(t, err)

	// The provider identity attaches to the account that owns the email.
	assert.Equal(t, existing.ID, result.User.ID)
	assert.Equal(t, 4, result.User.TokenVersion)
	links, err := f.links.ListByUserID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Len(t, links, 1)
}

func TestOAuthLogin_MissingState(t *testing.T) {
	f := newOAuthFixture(githubProfile())

	_, err := f.uc.Execute(context.Background(), OAuthLoginCommand{
		Provider: "github", Code: "auth-code", State: "never-issued",
	})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}

func TestOAuthLogin_StateIsSingleUse(t *testing.T) {
	f := newOAuthFixture(githubProfile())
	ctx := context.Background()
	state := f.issueState(t)

	_, err := f.uc.Execute(ctx, OAuthLoginCommand{Provider: "github", Code: "c", State: state})
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, OAuthLoginCommand{Provider: "github", Code: "c", State: state})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}

func TestOAuthLogin_StateProviderMismatch(t *testing.T) {
	f := newOAuthFixture(githubProfile())
	ctx := context.Background()

	state, err := f.states.Generate(ctx, "google", "/")
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, OAuthLoginCommand{Provider: "github", Code: "c", State: state})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}

func TestOAuthLogin_ExchangeFailure(t *testing.T) {
	f := newOAuthFixture(githubProfile())
	f.provider.exchangeErr = errors.New("provider said: secret internal details")

	_, err := f.uc.Execute(context.Background(), OAuthLoginCommand{
		Provider: "github", Code: "bad-code", State: f.issueState(t),
	})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeOAuthError, appErr.Type)
	// Provider error payloads never surface toward the client.
	assert.NotContains(t, appErr.Message, "secret internal details")
}

func TestOAuthLogin_ProfileFetchFailure(t *testing.T) {
	f := newOAuthFixture(githubProfile())
	f.provider.profileErr = errors.New("boom")

	_, err := f.uc.Execute(context.Background(), OAuthLoginCommand{
		Provider: "github", Code: "code", State: f.issueState(t),
	})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeOAuthError, appErr.Type)
}

func TestOAuthLogin_ProfileWithoutEmail(t *testing.T) {
	profile := githubProfile()
	profile.Email = ""
	f := newOAuthFixture(profile)
	ctx := context.Background()

	// An emailless profile must never link by email; it gets its own account.
	other := &user.User{
		Email:        "other@example.com",
		Username:     "other",
		Provider:     user.ProviderEmail,
		TokenVersion: 1,
	}
	require.NoError(t, f.repo.Create(ctx, other))

	result, err := f.uc.Execute(ctx, OAuthLoginCommand{
		Provider: "github", Code: "code", State: f.issueState(t),
	})
	require.NoError(t, err)
	assert.NotEqual(t, other.ID, result.User.ID)
	assert.Empty(t, result.User.Email)

	links, err := f.links.ListByUserID(ctx, result.User.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Nil(t, links[0].ProviderEmail)
}

func TestOAuthLogin_LinkRecordsProviderEmail(t *testing.T) {
	f := newOAuthFixture(githubProfile())
	ctx := context.Background()

	result, err := f.uc.Execute(ctx, OAuthLoginCommand{
		Provider: "github", Code: "code", State: f.issueState(t),
	})
	require.NoError(t, err)

	links, err := f.links.ListByUserID(ctx, result.User.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.NotNil(t, links[0].ProviderEmail)
	assert.Equal(t, "octocat@example.com", *links[0].ProviderEmail)
}

func TestOAuthLogin_UsernameCollisionFallsBack(t *testing.T) {
	f := newOAuthFixture(githubProfile())
	ctx := context.Background()

	taken := &user.User{
		Email:        "other@example.com",
		Username:     "mona-octocat",
		Provider:     user.ProviderEmail,
		TokenVersion: 1,
	}
	require.NoError(t, f.repo.Create(ctx, taken))

	result, err := f.uc.Execute(ctx, OAuthLoginCommand{
		Provider: "github", Code: "code", State: f.issueState(t),
	})
	require.NoError(t, err)
	assert.Equal(t, "user_12345", result.User.Username)
}
