package usecases

import (
	"context"
	"fmt"

	"codergrounds/internal/domain/user"
	"codergrounds/internal/infrastructure/auth"
	"codergrounds/internal/infrastructure/cache"
	apperrors "codergrounds/internal/shared/errors"
	"codergrounds/internal/shared/logger"
)

// StateConsumer atomically consumes single-use OAuth state tokens.
// Consume returns nil when the state is unknown, expired, or already used.
type StateConsumer interface {
	Consume(ctx context.Context, state string) (*cache.StateData, error)
}

// TxManager runs a function inside a database transaction carried through
// the context.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type OAuthLoginCommand struct {
	Provider string
	Code     string
	State    string
}

type OAuthLoginResult struct {
	AuthResult
	RedirectAfterLogin string
}

type OAuthLoginUseCase struct {
	userRepo  user.Repository
	linkRepo  user.OAuthLinkRepository
	providers ProviderResolver
	states    StateConsumer
	tokens    TokenIssuer
	txManager TxManager
	logger    logger.Interface
}

func NewOAuthLoginUseCase(
	userRepo user.Repository,
	linkRepo user.OAuthLinkRepository,
	providers ProviderResolver,
	states StateConsumer,
	tokens TokenIssuer,
	txManager TxManager,
	logger logger.Interface,
) *OAuthLoginUseCase {
	return &OAuthLoginUseCase{
		userRepo:  userRepo,
		linkRepo:  linkRepo,
		providers: providers,
		states:    states,
		tokens:    tokens,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute completes the OAuth callback: the state is consumed and validated
// before any provider call, the code is exchanged, and the profile resolves
// to an account inside one transaction.
func (uc *OAuthLoginUseCase) Execute(ctx context.Context, cmd OAuthLoginCommand) (*OAuthLoginResult, error) {
	state, err := uc.states.Consume(ctx, cmd.State)
	if err != nil {
		uc.logger.Errorw("failed to consume oauth state", "error", err, "provider", cmd.Provider)
		return nil, fmt.Errorf("failed to consume oauth state: %w", err)
	}
	if state == nil || state.Provider != cmd.Provider {
		return nil, apperrors.NewInvalidOAuthStateError()
	}

	provider, err := uc.providers.GetProvider(cmd.Provider)
	if err != nil {
		return nil, err
	}

	accessToken, err := provider.ExchangeCode(ctx, cmd.Code)
	if err != nil {
		uc.logger.Errorw("oauth code exchange failed", "error", err, "provider", cmd.Provider)
		return nil, apperrors.NewOAuthError(cmd.Provider, "exchange")
	}

	profile, err := provider.FetchProfile(ctx, accessToken)
	if err != nil {
		uc.logger.Errorw("oauth profile fetch failed", "error", err, "provider", cmd.Provider)
		return nil, apperrors.NewOAuthError(cmd.Provider, "profile")
	}
	if profile.ProviderUserID == "" {
		uc.logger.Errorw("oauth profile incomplete", "provider", cmd.Provider)
		return nil, apperrors.NewOAuthError(cmd.Provider, "profile")
	}

	var resolved *user.User
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		resolved, err = uc.resolveAccount(txCtx, profile)
		return err
	})
	if err != nil {
		return nil, err
	}

	pair, err := uc.tokens.GeneratePair(resolved)
	if err != nil {
		uc.logger.Errorw("failed to generate token pair", "error", err, "user_id", resolved.ID)
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("oauth login completed", "user_id", resolved.ID, "provider", cmd.Provider)

	return &OAuthLoginResult{
		AuthResult: AuthResult{
			User:         resolved,
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			ExpiresIn:    pair.ExpiresIn,
		},
		RedirectAfterLogin: state.RedirectAfterLogin,
	}, nil
}

// resolveAccount finds or creates the account for an external identity:
// an existing link wins, then an email match gains a new link, and
// otherwise a fresh user is created together with its link. Database
// uniqueness constraints backstop concurrent callbacks.
func (uc *OAuthLoginUseCase) resolveAccount(ctx context.Context, profile *auth.Profile) (*user.User, error) {
	link, err := uc.linkRepo.GetByProviderAndUserID(ctx, profile.Provider, profile.ProviderUserID)
	if err != nil {
		uc.logger.Errorw("failed to look up provider link", "error", err)
		return nil, fmt.Errorf("failed to look up provider link: %w", err)
	}
	if link != nil {
		existing, err := uc.userRepo.GetByID(ctx, link.UserID)
		if err != nil {
			uc.logger.Errorw("failed to load linked user", "error", err, "user_id", link.UserID)
			return nil, fmt.Errorf("failed to load linked user: %w", err)
		}
		if existing == nil {
			return nil, apperrors.NewInternalError("linked user no longer exists")
		}
		return existing, nil
	}

	// Linking by email only applies when the provider supplied a verified
	// address; an emailless profile goes straight to account creation.
	if profile.Email != "" {
		existing, err := uc.userRepo.GetByEmail(ctx, profile.Email)
		if err != nil {
			uc.logger.Errorw("failed to look up user by email", "error", err)
			return nil, fmt.Errorf("failed to look up user by email: %w", err)
		}
		if existing != nil {
			if err := uc.createLink(ctx, existing.ID, profile); err != nil {
				return nil, err
			}
			return existing, nil
		}
	}

	created, err := uc.createUser(ctx, profile)
	if err != nil {
		return nil, err
	}
	if err := uc.createLink(ctx, created.ID, profile); err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *OAuthLoginUseCase) createUser(ctx context.Context, profile *auth.Profile) (*user.User, error) {
	username := user.SlugifyUsername(profile.Name, profile.ProviderUserID)

	taken, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to check username availability", "error", err)
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if taken != nil {
		username = fmt.Sprintf("user_%s", profile.ProviderUserID)
	}

	avatarURL := profile.AvatarURL
	if avatarURL == "" {
		avatarURL = user.DefaultAvatarURL(username)
	}

	newUser := &user.User{
		Email:        profile.Email,
		Username:     username,
		AvatarURL:    &avatarURL,
		Provider:     profile.Provider,
		TokenVersion: 1,
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("account already exists")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user created from oauth profile", "user_id", newUser.ID, "provider", profile.Provider)
	return newUser, nil
}

func (uc *OAuthLoginUseCase) createLink(ctx context.Context, userID string, profile *auth.Profile) error {
	link := &user.OAuthProviderLink{
		UserID:         userID,
		Provider:       profile.Provider,
		ProviderUserID: profile.ProviderUserID,
	}
	if profile.Email != "" {
		email := profile.Email
		link.ProviderEmail = &email
	}
	if err := uc.linkRepo.Create(ctx, link); err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("provider identity already linked")
		}
		uc.logger.Errorw("failed to create provider link", "error", err, "user_id", userID)
		return fmt.Errorf("failed to create provider link: %w", err)
	}
	return nil
}
