package usecases

import (
	"context"
	"fmt"

	"codergrounds/internal/infrastructure/auth"
	"codergrounds/internal/shared/logger"
)

// StateIssuer creates single-use OAuth state tokens.
type StateIssuer interface {
	Generate(ctx context.Context, provider, redirectAfterLogin string) (string, error)
}

// ProviderResolver resolves OAuth providers by their tag.
type ProviderResolver interface {
	GetProvider(name string) (auth.Provider, error)
}

type InitiateOAuthCommand struct {
	Provider           string
	RedirectAfterLogin string
}

type InitiateOAuthUseCase struct {
	providers ProviderResolver
	states    StateIssuer
	logger    logger.Interface
}

func NewInitiateOAuthUseCase(
	providers ProviderResolver,
	states StateIssuer,
	logger logger.Interface,
) *InitiateOAuthUseCase {
	return &InitiateOAuthUseCase{
		providers: providers,
		states:    states,
		logger:    logger,
	}
}

// Execute returns the provider consent URL bound to a fresh state token.
func (uc *InitiateOAuthUseCase) Execute(ctx context.Context, cmd InitiateOAuthCommand) (string, error) {
	provider, err := uc.providers.GetProvider(cmd.Provider)
	if err != nil {
		return "", err
	}

	state, err := uc.states.Generate(ctx, cmd.Provider, cmd.RedirectAfterLogin)
	if err != nil {
		uc.logger.Errorw("failed to generate oauth state", "error", err, "provider", cmd.Provider)
		return "", fmt.Errorf("failed to generate oauth state: %w", err)
	}

	return provider.AuthorizationURL(state), nil
}
