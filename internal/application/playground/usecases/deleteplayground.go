package usecases

import (
	"context"
	"fmt"

	"codergrounds/internal/domain/playground"
	apperrors "codergrounds/internal/shared/errors"
	"codergrounds/internal/shared/logger"
)

type DeletePlaygroundUseCase struct {
	playgroundRepo playground.Repository
	logger         logger.Interface
}

func NewDeletePlaygroundUseCase(
	playgroundRepo playground.Repository,
	logger logger.Interface,
) *DeletePlaygroundUseCase {
	return &DeletePlaygroundUseCase{
		playgroundRepo: playgroundRepo,
		logger:         logger,
	}
}

func (uc *DeletePlaygroundUseCase) Execute(ctx context.Context, id, userID string) error {
	pg, err := uc.playgroundRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to load playground", "error", err, "playground_id", id)
		return fmt.Errorf("failed to load playground: %w", err)
	}
	if pg == nil {
		return apperrors.NewNotFoundError("playground not found")
	}
	if !pg.IsOwnedBy(userID) {
		return apperrors.NewForbiddenError("you do not own this playground")
	}

	if err := uc.playgroundRepo.Delete(ctx, pg.ID); err != nil {
		uc.logger.Errorw("failed to delete playground", "error", err, "playground_id", pg.ID)
		return fmt.Errorf("failed to delete playground: %w", err)
	}

	uc.logger.Infow("playground deleted", "playground_id", pg.ID, "user_id", userID)
	return nil
}
