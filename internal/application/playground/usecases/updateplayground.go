package usecases

import (
	"context"
	"fmt"

	"codergrounds/internal/domain/playground"
	apperrors "codergrounds/internal/shared/errors"
	"codergrounds/internal/shared/logger"
)

type UpdatePlaygroundCommand struct {
	ID          string
	UserID      string
	Name        *string
	Description *string
	Visibility  *string
}

type UpdatePlaygroundUseCase struct {
	playgroundRepo playground.Repository
	logger         logger.Interface
}

func NewUpdatePlaygroundUseCase(
	playgroundRepo playground.Repository,
	logger logger.Interface,
) *UpdatePlaygroundUseCase {
	return &UpdatePlaygroundUseCase{
		playgroundRepo: playgroundRepo,
		logger:         logger,
	}
}

func (uc *UpdatePlaygroundUseCase) Execute(ctx context.Context, cmd UpdatePlaygroundCommand) (*playground.Playground, error) {
	pg, err := uc.playgroundRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to load playground", "error", err, "playground_id", cmd.ID)
		return nil, fmt.Errorf("failed to load playground: %w", err)
	}
	if pg == nil {
		return nil, apperrors.NewNotFoundError("playground not found")
	}
	if !pg.IsOwnedBy(cmd.UserID) {
		return nil, apperrors.NewForbiddenError("you do not own this playground")
	}

	if cmd.Name != nil {
		pg.Name = *cmd.Name
	}
	if cmd.Description != nil {
		pg.Description = *cmd.Description
	}
	if cmd.Visibility != nil {
		visibility := playground.Visibility(*cmd.Visibility)
		if !visibility.IsValid() {
			return nil, apperrors.NewValidationError("invalid visibility value")
		}
		pg.Visibility = visibility
	}

	if err := uc.playgroundRepo.Update(ctx, pg); err != nil {
		uc.logger.Errorw("failed to update playground", "error", err, "playground_id", pg.ID)
		return nil, fmt.Errorf("failed to update playground: %w", err)
	}

	return pg, nil
}
