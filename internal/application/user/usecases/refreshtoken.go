package usecases

import (
	"context"
	"fmt"
	"time"

	"codergrounds/internal/domain/user"
	"codergrounds/internal/infrastructure/auth"
	apperrors "codergrounds/internal/shared/errors"
	"codergrounds/internal/shared/logger"
)

// RefreshVerifier validates refresh tokens and reports their remaining
// lifetime.
type RefreshVerifier interface {
	VerifyRefresh(tokenString string) (*auth.Claims, error)
	RemainingTTL(claims *auth.Claims) time.Duration
}

// TokenRevoker records revoked refresh tokens. Both operations treat cache
// failures as hard errors; rotation must never proceed on an unconfirmed
// revocation.
type TokenRevoker interface {
	Blacklist(ctx context.Context, token string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenUseCase struct {
	userRepo user.Repository
	verifier RefreshVerifier
	revoker  TokenRevoker
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewRefreshTokenUseCase(
	userRepo user.Repository,
	verifier RefreshVerifier,
	revoker TokenRevoker,
	tokens TokenIssuer,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo: userRepo,
		verifier: verifier,
		revoker:  revoker,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute rotates a refresh token: the old token is verified, checked
// against the revocation list, revoked for its remaining lifetime, and only
// then is a new pair minted. The new pair carries the user's current token
// version unchanged.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*AuthResult, error) {
	if cmd.RefreshToken == "" {
		return nil, apperrors.NewUnauthorizedError("refresh token is required")
	}

	claims, err := uc.verifier.VerifyRefresh(cmd.RefreshToken)
	if err != nil {
		return nil, err
	}

	revoked, err := uc.revoker.IsBlacklisted(ctx, cmd.RefreshToken)
	if err != nil {
		uc.logger.Errorw("failed to check token revocation", "error", err)
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, apperrors.NewTokenRevokedError()
	}

	existing, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "error", err, "user_id", claims.UserID)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewUnauthorizedError("user no longer exists")
	}

	// A version bump (password change, forced logout) invalidates every
	// token minted before it.
	if claims.TokenVersion != existing.TokenVersion {
		return nil, apperrors.NewUnauthorizedError("token version mismatch")
	}

	// Revoke the old token for its natural lifetime before minting the
	// replacement. An unconfirmed revocation aborts the rotation.
	if ttl := uc.verifier.RemainingTTL(claims); ttl > 0 {
		if err := uc.revoker.Blacklist(ctx, cmd.RefreshToken, ttl); err != nil {
			uc.logger.Errorw("failed to revoke old refresh token", "error", err, "user_id", existing.ID)
			return nil, fmt.Errorf("failed to revoke old refresh token: %w", err)
		}
	}

	pair, err := uc.tokens.GeneratePair(existing)
	if err != nil {
		uc.logger.Errorw("failed to generate token pair", "error", err, "user_id", existing.ID)
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &AuthResult{
		User:         existing,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
