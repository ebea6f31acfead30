package usecases

import (
	"context"
	"fmt"

	"codergrounds/internal/domain/playground"
	apperrors "codergrounds/internal/shared/errors"
	"codergrounds/internal/shared/logger"
)

type UpdateFileCommand struct {
	PlaygroundID string
	FileID       string
	UserID       string
	Name         *string
	Content      *string
	Order        *int
}

type UpdateFileUseCase struct {
	playgroundRepo playground.Repository
	fileRepo       playground.FileRepository
	logger         logger.Interface
}

func NewUpdateFileUseCase(
	playgroundRepo playground.Repository,
	fileRepo playground.FileRepository,
	logger logger.Interface,
) *UpdateFileUseCase {
	return &UpdateFileUseCase{
		playgroundRepo: playgroundRepo,
		fileRepo:       fileRepo,
		logger:         logger,
	}
}

func (uc *UpdateFileUseCase) Execute(ctx context.Context, cmd UpdateFileCommand) (*playground.File, error) {
	pg, err := loadOwnedPlayground(ctx, uc.playgroundRepo, cmd.PlaygroundID, cmd.UserID)
	if err != nil {
		return nil, err
	}

	f, err := uc.fileRepo.GetByID(ctx, cmd.FileID)
	if err != nil {
		uc.logger.Errorw("failed to load file", "error", err, "file_id", cmd.FileID)
		return nil, fmt.Errorf("failed to load file: %w", err)
	}
	if f == nil || f.PlaygroundID != pg.ID {
		return nil, apperrors.NewNotFoundError("file not found")
	}

	if cmd.Name != nil {
		f.Name = *cmd.Name
	}
	if cmd.Content != nil {
		f.Content = *cmd.Content
	}
	if cmd.Order != nil {
		f.Order = *cmd.Order
	}

	if err := uc.fileRepo.Update(ctx, f); err != nil {
		uc.logger.Errorw("failed to update file", "error", err, "file_id", f.ID)
		return nil, fmt.Errorf("failed to update file: %w", err)
	}

	return f, nil
}
