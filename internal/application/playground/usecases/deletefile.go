package usecases

import (
	"context"
	"fmt"

	"codergrounds/internal/domain/playground"
	apperrors "codergrounds/internal/shared/errors"
	"codergrounds/internal/shared/logger"
)

type DeleteFileCommand struct {
	PlaygroundID string
	FileID       string
	UserID       string
}

type DeleteFileUseCase struct {
	playgroundRepo playground.Repository
	fileRepo       playground.FileRepository
	logger         logger.Interface
}

func NewDeleteFileUseCase(
	playgroundRepo playground.Repository,
	fileRepo playground.FileRepository,
	logger logger.Interface,
) *DeleteFileUseCase {
	return &DeleteFileUseCase{
		playgroundRepo: playgroundRepo,
		fileRepo:       fileRepo,
		logger:         logger,
	}
}

func (uc *DeleteFileUseCase) Execute(ctx context.Context, cmd DeleteFileCommand) error {
	pg, err := loadOwnedPlayground(ctx, uc.playgroundRepo, cmd.PlaygroundID, cmd.UserID)
	if err != nil {
		return err
	}

	f, err := uc.fileRepo.GetByID(ctx, cmd.FileID)
	if err != nil {
		uc.logger.Errorw("failed to load file", "error", err, "file_id", cmd.FileID)
		return fmt.Errorf("failed to load file: %w", err)
	}
	if f == nil || f.PlaygroundID != pg.ID {
		return apperrors.NewNotFoundError("file not found")
	}

	if err := uc.fileRepo.Delete(ctx, f.ID); err != nil {
		uc.logger.Errorw("failed to delete file", "error", err, "file_id", f.ID)
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
