package usecases

import (
	"context"
	"fmt"

	"codergrounds/internal/domain/user"
	apperrors "codergrounds/internal/shared/errors"
	"codergrounds/internal/shared/logger"
)

type LoginCommand struct {
	// Identifier is the email or username the user signs in with.
	Identifier string
	Password   string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*AuthResult, error) {
	existing, err := uc.userRepo.GetByEmailOrUsername(ctx, cmd.Identifier)
	if err != nil {
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewConflictError("no user found with this email or username")
	}

	// OAuth-only accounts have no password hash and cannot use this flow.
	if !existing.HasPassword() {
		return nil, apperrors.NewInvalidCredentialsError()
	}

	if err := uc.hasher.Verify(cmd.Password, *existing.PasswordHash); err != nil {
		return nil, apperrors.NewInvalidCredentialsError()
	}

	pair, err := uc.tokens.GeneratePair(existing)
	if err != nil {
		uc.logger.Errorw("failed to generate token pair", "error", err, "user_id", existing.ID)
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID, "username", existing.Username)

	return &AuthResult{
		User:         existing,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
