package usecases

import (
	"context"
	"fmt"

	"codergrounds/internal/domain/playground"
	apperrors "codergrounds/internal/shared/errors"
	"codergrounds/internal/shared/logger"
)

type CreatePlaygroundCommand struct {
	UserID      string
	Name        string
	Description string
	Visibility  string
}

type CreatePlaygroundUseCase struct {
	playgroundRepo playground.Repository
	logger         logger.Interface
}

func NewCreatePlaygroundUseCase(
	playgroundRepo playground.Repository,
	logger logger.Interface,
) *CreatePlaygroundUseCase {
	return &CreatePlaygroundUseCase{
		playgroundRepo: playgroundRepo,
		logger:         logger,
	}
}

func (uc *CreatePlaygroundUseCase) Execute(ctx context.Context, cmd CreatePlaygroundCommand) (*playground.Playground, error) {
	visibility := playground.Visibility(cmd.Visibility)
	if cmd.Visibility == "" {
		visibility = playground.VisibilityPrivate
	}
	if !visibility.IsValid() {
		return nil, apperrors.NewValidationError("invalid visibility value")
	}

	pg := &playground.Playground{
		UserID:      cmd.UserID,
		Name:        cmd.Name,
		Description: cmd.Description,
		Visibility:  visibility,
	}

	if err := uc.playgroundRepo.Create(ctx, pg); err != nil {
		uc.logger.Errorw("failed to create playground", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to create playground: %w", err)
	}

	uc.logger.Infow("playground created", "playground_id", pg.ID, "user_id", cmd.UserID)
	return pg, nil
}
