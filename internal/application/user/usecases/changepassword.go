package usecases

import (
	"context"
	"fmt"

	"codergrounds/internal/domain/user"
	apperrors "codergrounds/internal/shared/errors"
	"codergrounds/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID          string
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

type ChangePasswordUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Execute replaces the user's password and bumps the token version, which
// invalidates every refresh token issued before the change.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	if cmd.NewPassword != cmd.ConfirmPassword {
		return apperrors.NewBadRequestError("new password and confirmation do not match")
	}

	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "error", err, "user_id", cmd.UserID)
		return fmt.Errorf("failed to load user: %w", err)
	}
	if existing == nil {
		return apperrors.NewNotFoundError("user not found")
	}

	if !existing.HasPassword() {
		return apperrors.NewBadRequestError("account has no password; sign in through your provider")
	}

	if err := uc.hasher.Verify(cmd.CurrentPassword, *existing.PasswordHash); err != nil {
		return apperrors.NewInvalidCredentialsError()
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash new password", "error", err)
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	existing.SetPassword(hash)
	existing.BumpTokenVersion()

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", existing.ID)
		return fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("password changed", "user_id", existing.ID)
	return nil
}
