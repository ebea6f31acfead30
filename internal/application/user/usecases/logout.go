package usecases

import (
	"context"
	"fmt"

	"codergrounds/internal/shared/logger"
)

type LogoutCommand struct {
	RefreshToken string
}

type LogoutUseCase struct {
	verifier RefreshVerifier
	revoker  TokenRevoker
	logger   logger.Interface
}

func NewLogoutUseCase(
	verifier RefreshVerifier,
	revoker TokenRevoker,
	logger logger.Interface,
) *LogoutUseCase {
	return &LogoutUseCase{
		verifier: verifier,
		revoker:  revoker,
		logger:   logger,
	}
}

// Execute revokes the presented refresh token. An absent, expired, or
// malformed token makes logout a no-op; the session is already unusable.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.RefreshToken == "" {
		return nil
	}

	claims, err := uc.verifier.VerifyRefresh(cmd.RefreshToken)
	if err != nil {
		return nil
	}

	ttl := uc.verifier.RemainingTTL(claims)
	if ttl <= 0 {
		return nil
	}

	if err := uc.revoker.Blacklist(ctx, cmd.RefreshToken, ttl); err != nil {
		uc.logger.Errorw("failed to revoke refresh token on logout", "error", err, "user_id", claims.UserID)
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	uc.logger.Infow("user logged out", "user_id", claims.UserID)
	return nil
}
